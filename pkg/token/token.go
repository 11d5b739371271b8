// Package token implements issuance and verification of the signed,
// time-limited credentials used by the API. A token binds a user identity
// (email) to a fingerprint derived from the identity and the user's cached
// IAM access-key id, so possession of the token alone is not enough to pass
// verification for a different identity.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned by Issue when the identity is unknown
	// or the password does not match the stored hash.
	ErrInvalidCredentials = errors.New("invalid user or password")

	// ErrTokenExpired is returned by Verify for a well-formed but expired token.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned by Verify for a malformed token or a bad
	// signature.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrNotAuthorized is returned by Verify when the token is valid but its
	// fingerprint does not match the supplied identity.
	ErrNotAuthorized = errors.New("not authorized")
)

// Credential is the subset of the cached user row the service needs.
type Credential struct {
	Email        string
	PasswordHash string
	AccessKeyID  string
}

// CredentialStore looks up cached credentials by identity.
type CredentialStore interface {
	// GetCredential returns the credential for the given email, or an error
	// if no such user exists.
	GetCredential(email string) (*Credential, error)
}

// Claims is the token payload. The issuer claim carries the access-key id
// the fingerprint was derived from.
type Claims struct {
	Data Data `json:"data"`
	jwt.RegisteredClaims
}

// Data holds the private claims.
type Data struct {
	// Hash is the bcrypt hash of identity + access-key id.
	Hash string `json:"hash"`
}

// Service issues and verifies tokens.
type Service struct {
	store  CredentialStore
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService creates a token service signing with the given shared secret.
func NewService(store CredentialStore, secret string, ttl time.Duration) *Service {
	return &Service{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue validates the identity and password against the cached user row and
// returns a signed token. The fingerprint embedded in the token is a bcrypt
// hash of email + access-key id.
func (s *Service) Issue(email, password string) (string, error) {
	cred, err := s.store.GetCredential(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	fingerprint, err := bcrypt.GenerateFromPassword([]byte(email+cred.AccessKeyID), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	issuedAt := s.now()
	claims := Claims{
		Data: Data{Hash: string(fingerprint)},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cred.AccessKeyID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks the token signature and expiry, then compares the embedded
// fingerprint against the supplied identity. On success it returns the
// verified claims. The bcrypt comparison is constant-time on the hash side.
func (s *Service) Verify(tokenString, email string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(claims.Data.Hash), []byte(email+claims.Issuer)); err != nil {
		return nil, ErrNotAuthorized
	}

	return claims, nil
}

// HashPassword hashes a plaintext password for storage in the user table.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
