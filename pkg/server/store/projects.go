package store

import (
	"errors"

	"github.com/nwcdlabs/codecommit-admin/pkg/model"
)

// ErrProjectNotFound is returned when a project doesn't exist in the registry
var ErrProjectNotFound = errors.New("project not found")

// ProjectsStore abstracts project registry operations, including the
// team-project association rows
type ProjectsStore interface {
	// ListProjects returns all cached project rows
	ListProjects() ([]model.Project, error)

	// GetProject retrieves a project by id.
	// Returns ErrProjectNotFound if no row exists.
	GetProject(id int64) (*model.Project, error)

	// CreateProject inserts a new project row
	CreateProject(project *model.Project) error

	// UpdateProjectName changes the project's name
	UpdateProjectName(id int64, projectName string) error

	// UpdateProjectStatus changes the project's status
	UpdateProjectStatus(id int64, status string) error

	// DeleteProject removes the project row
	DeleteProject(id int64) error

	// BatchDeleteProjects removes all projects with the given ids in one
	// statement
	BatchDeleteProjects(ids []int64) error

	// AddGroup records a team's association with a project
	AddGroup(link *model.TeamProject) error

	// ListGroups returns the team association rows for a project
	ListGroups(projectID int64) ([]model.TeamProject, error)
}
