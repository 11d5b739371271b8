package store

import (
	"errors"

	"github.com/nwcdlabs/codecommit-admin/pkg/model"
)

// ErrRepoNotFound is returned when a repo doesn't exist in the registry
var ErrRepoNotFound = errors.New("repo not found")

// ReposStore abstracts repository registry operations
type ReposStore interface {
	// ListRepos returns all cached repository rows
	ListRepos() ([]model.Repo, error)

	// GetRepoByName retrieves a repository by name.
	// Returns ErrRepoNotFound if no row exists.
	GetRepoByName(repoName string) (*model.Repo, error)

	// CreateRepo inserts a new repository row
	CreateRepo(repo *model.Repo) error

	// DeleteRepoByName removes the repository row. Deleting a missing row
	// is not an error.
	DeleteRepoByName(repoName string) error

	// GetRepoArns resolves repository names to their cached provider ARNs.
	// Names with no cached row are omitted from the result.
	GetRepoArns(repoNames []string) ([]string, error)
}
