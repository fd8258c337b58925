// Package auth owns password credentials: registration, verification and
// password changes over the shared identity store.
package auth

import (
	"context"

	"github.com/pkg/errors"
	"github.com/tilhub/acronyms/users"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// dummyHash is compared against when the username does not exist, so a failed
// lookup costs the same as a failed password check.
var dummyHash = mustHash("not-a-real-password")

func mustHash(password string) string {
	hash, err := users.HashPassword(password)
	if err != nil {
		panic(err)
	}
	return hash
}

// Service hashes, verifies and rotates password credentials.
type Service struct {
	users users.Repo
}

func NewService(userRepo users.Repo) *Service {
	return &Service{users: userRepo}
}

// Register validates the submitted fields, hashes the password and persists a
// new identity. A username collision, including one racing with a concurrent
// registration, is reported as users.ErrDuplicateUsername; the storage layer's
// unique index guarantees no partial identity is left behind.
func (s *Service) Register(ctx context.Context, name, username, password string) (*users.User, error) {
	if err := validateRegistration(name, username, password); err != nil {
		return nil, err
	}

	hash, err := users.HashPassword(password)
	if err != nil {
		return nil, errors.Wrap(err, "[Service.Register] hash password")
	}

	user := &users.User{Name: name, Username: username, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, users.ErrDuplicateUsername) {
			return nil, users.ErrDuplicateUsername
		}
		return nil, errors.Wrap(err, "[Service.Register] create user")
	}
	return user, nil
}

// Verify resolves a username/password pair to an identity. It returns
// ErrInvalidCredentials for an unknown user and for a wrong password alike,
// and burns a bcrypt comparison in the unknown-user case so the two are
// indistinguishable by timing as well as by content.
func (s *Service) Verify(ctx context.Context, username, password string) (*users.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if !users.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// SetPassword re-hashes and overwrites the identity's credential. No history
// or reuse check is performed.
func (s *Service) SetPassword(ctx context.Context, user *users.User, password string) error {
	hash, err := users.HashPassword(password)
	if err != nil {
		return errors.Wrap(err, "[Service.SetPassword] hash password")
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return errors.Wrap(err, "[Service.SetPassword] update password")
	}
	return nil
}

func validateRegistration(name, username, password string) error {
	if name == "" {
		return &ValidationError{Reason: "name is required"}
	}
	if username == "" {
		return &ValidationError{Reason: "username is required"}
	}
	if len(password) < minPasswordLength {
		return &ValidationError{Reason: "password must be at least 8 characters long"}
	}
	return nil
}
