// Package users defines the identity model shared by every authentication
// scheme in the service, together with password hashing helpers.
package users

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrNotFound is returned when no identity matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when a create collides with an
	// existing username. Uniqueness is enforced by the storage layer.
	ErrDuplicateUsername = errors.New("username already taken")
)

// User is a registered account. The password hash never leaves the server;
// responses use the Public projection instead.
type User struct {
	ID           string    `json:"id,omitempty"`
	Name         string    `json:"name,omitempty"`
	Username     string    `json:"username,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// Public is the projection of a User that is safe to return to callers.
type Public struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// Public returns the caller-safe projection of the user.
func (u *User) Public() Public {
	return Public{ID: u.ID, Name: u.Name, Username: u.Username}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
