package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nwcdlabs/codecommit-admin/pkg/model"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store"
)

// Ensure ProjectsStore implements store.ProjectsStore
var _ store.ProjectsStore = (*ProjectsStore)(nil)

// ProjectsStore implements store.ProjectsStore using GORM
type ProjectsStore struct {
	db *gorm.DB
}

// NewProjectsStore creates a new ProjectsStore
func NewProjectsStore(db *gorm.DB) *ProjectsStore {
	return &ProjectsStore{db: db}
}

// ListProjects returns all cached project rows
func (s *ProjectsStore) ListProjects() ([]model.Project, error) {
	projects := make([]model.Project, 0)
	if err := s.db.Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject retrieves a project by id.
func (s *ProjectsStore) GetProject(id int64) (*model.Project, error) {
	var project model.Project
	tx := s.db.Where("id = ?", id).First(&project)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrProjectNotFound
		}
		return nil, tx.Error
	}
	return &project, nil
}

// CreateProject inserts a new project row
func (s *ProjectsStore) CreateProject(project *model.Project) error {
	return s.db.Create(project).Error
}

// UpdateProjectName changes the project's name
func (s *ProjectsStore) UpdateProjectName(id int64, projectName string) error {
	return s.db.Model(&model.Project{}).Where("id = ?", id).Update("project_name", projectName).Error
}

// UpdateProjectStatus changes the project's status
func (s *ProjectsStore) UpdateProjectStatus(id int64, status string) error {
	return s.db.Model(&model.Project{}).Where("id = ?", id).Update("status", status).Error
}

// DeleteProject removes the project row
func (s *ProjectsStore) DeleteProject(id int64) error {
	return s.db.Where("id = ?", id).Delete(&model.Project{}).Error
}

// BatchDeleteProjects removes all projects with the given ids in one
// statement
func (s *ProjectsStore) BatchDeleteProjects(ids []int64) error {
	return s.db.Where("id IN ?", ids).Delete(&model.Project{}).Error
}

// AddGroup records a team's association with a project
func (s *ProjectsStore) AddGroup(link *model.TeamProject) error {
	return s.db.Create(link).Error
}

// ListGroups returns the team association rows for a project
func (s *ProjectsStore) ListGroups(projectID int64) ([]model.TeamProject, error) {
	groups := make([]model.TeamProject, 0)
	if err := s.db.Where("project_id = ?", projectID).Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}
