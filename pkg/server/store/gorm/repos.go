package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nwcdlabs/codecommit-admin/pkg/model"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store"
)

// Ensure ReposStore implements store.ReposStore
var _ store.ReposStore = (*ReposStore)(nil)

// ReposStore implements store.ReposStore using GORM
type ReposStore struct {
	db *gorm.DB
}

// NewReposStore creates a new ReposStore
func NewReposStore(db *gorm.DB) *ReposStore {
	return &ReposStore{db: db}
}

// ListRepos returns all cached repository rows
func (s *ReposStore) ListRepos() ([]model.Repo, error) {
	repos := make([]model.Repo, 0)
	if err := s.db.Find(&repos).Error; err != nil {
		return nil, err
	}
	return repos, nil
}

// GetRepoByName retrieves a repository by name.
func (s *ReposStore) GetRepoByName(repoName string) (*model.Repo, error) {
	var repo model.Repo
	tx := s.db.Where("repo_name = ?", repoName).First(&repo)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrRepoNotFound
		}
		return nil, tx.Error
	}
	return &repo, nil
}

// CreateRepo inserts a new repository row
func (s *ReposStore) CreateRepo(repo *model.Repo) error {
	return s.db.Create(repo).Error
}

// DeleteRepoByName removes the repository row.
func (s *ReposStore) DeleteRepoByName(repoName string) error {
	return s.db.Where("repo_name = ?", repoName).Delete(&model.Repo{}).Error
}

// GetRepoArns resolves repository names to their cached provider ARNs.
func (s *ReposStore) GetRepoArns(repoNames []string) ([]string, error) {
	arns := make([]string, 0, len(repoNames))
	tx := s.db.Model(&model.Repo{}).Where("repo_name IN ?", repoNames).Pluck("aws_arn", &arns)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return arns, nil
}
