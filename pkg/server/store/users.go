package store

import (
	"errors"

	"github.com/nwcdlabs/codecommit-admin/pkg/model"
)

// ErrUserNotFound is returned when a user doesn't exist in the registry
var ErrUserNotFound = errors.New("user not found")

// ErrUserExists is returned when a create collides with the email
// uniqueness constraint
var ErrUserExists = errors.New("user already exists")

// UsersStore abstracts user registry operations
type UsersStore interface {
	// ListUsers returns all cached user rows
	ListUsers() ([]model.User, error)

	// GetUserByEmail retrieves a user by email.
	// Returns ErrUserNotFound if no row exists.
	GetUserByEmail(email string) (*model.User, error)

	// CreateUser inserts a new user row.
	// Returns ErrUserExists on an email conflict.
	CreateUser(user *model.User) error

	// DeleteUserByEmail removes the user row. Deleting a missing row is
	// not an error.
	DeleteUserByEmail(email string) error
}
