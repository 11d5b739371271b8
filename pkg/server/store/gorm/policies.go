package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/nwcdlabs/codecommit-admin/pkg/model"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store"
)

// Ensure PoliciesStore implements store.PoliciesStore
var _ store.PoliciesStore = (*PoliciesStore)(nil)

// PoliciesStore implements store.PoliciesStore using GORM
type PoliciesStore struct {
	db *gorm.DB
}

// NewPoliciesStore creates a new PoliciesStore
func NewPoliciesStore(db *gorm.DB) *PoliciesStore {
	return &PoliciesStore{db: db}
}

// ListPolicies returns all cached policy rows
func (s *PoliciesStore) ListPolicies() ([]model.Policy, error) {
	policies := make([]model.Policy, 0)
	if err := s.db.Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

// GetPolicyByName retrieves a policy by name.
func (s *PoliciesStore) GetPolicyByName(policyName string) (*model.Policy, error) {
	var policy model.Policy
	tx := s.db.Where("policy_name = ?", policyName).First(&policy)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrPolicyNotFound
		}
		return nil, tx.Error
	}
	return &policy, nil
}

// CreatePolicy inserts a new policy row
func (s *PoliciesStore) CreatePolicy(policy *model.Policy) error {
	return s.db.Create(policy).Error
}

// DeletePolicyByName removes the policy row.
func (s *PoliciesStore) DeletePolicyByName(policyName string) error {
	return s.db.Where("policy_name = ?", policyName).Delete(&model.Policy{}).Error
}
