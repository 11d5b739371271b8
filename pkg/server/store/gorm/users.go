package gorm

import (
	"errors"

	"github.com/jackc/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/nwcdlabs/codecommit-admin/pkg/model"
	"github.com/nwcdlabs/codecommit-admin/pkg/server/store"
	"github.com/nwcdlabs/codecommit-admin/pkg/token"
)

// Ensure UsersStore implements store.UsersStore and token.CredentialStore
var (
	_ store.UsersStore      = (*UsersStore)(nil)
	_ token.CredentialStore = (*UsersStore)(nil)
)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// ListUsers returns all cached user rows
func (s *UsersStore) ListUsers() ([]model.User, error) {
	users := make([]model.User, 0)
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserByEmail retrieves a user by email.
func (s *UsersStore) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("email = ?", email).First(&user)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}

// CreateUser inserts a new user row.
func (s *UsersStore) CreateUser(user *model.User) error {
	err := s.db.Create(user).Error
	if isUniqueViolation(err) {
		return store.ErrUserExists
	}
	return err
}

// DeleteUserByEmail removes the user row.
func (s *UsersStore) DeleteUserByEmail(email string) error {
	return s.db.Where("email = ?", email).Delete(&model.User{}).Error
}

// GetCredential returns the stored password hash and access-key id for the
// given email, for token issuance and verification.
func (s *UsersStore) GetCredential(email string) (*token.Credential, error) {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	return &token.Credential{
		Email:        user.Email,
		PasswordHash: user.Password,
		AccessKeyID:  user.AccessKeyID,
	}, nil
}

// isUniqueViolation reports whether err is a postgres unique constraint
// violation (class 23505). The gorm driver surfaces pgconn errors; lib/pq
// errors come from connections opened through database/sql.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
