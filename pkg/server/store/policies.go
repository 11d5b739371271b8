package store

import (
	"errors"

	"github.com/nwcdlabs/codecommit-admin/pkg/model"
)

// ErrPolicyNotFound is returned when a policy doesn't exist in the registry
var ErrPolicyNotFound = errors.New("policy not found")

// PoliciesStore abstracts policy registry operations
type PoliciesStore interface {
	// ListPolicies returns all cached policy rows
	ListPolicies() ([]model.Policy, error)

	// GetPolicyByName retrieves a policy by name.
	// Returns ErrPolicyNotFound if no row exists.
	GetPolicyByName(policyName string) (*model.Policy, error)

	// CreatePolicy inserts a new policy row
	CreatePolicy(policy *model.Policy) error

	// DeletePolicyByName removes the policy row. Deleting a missing row is
	// not an error.
	DeletePolicyByName(policyName string) error
}
