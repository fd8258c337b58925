// Package token issues and validates the opaque bearer tokens used by the
// stateless API routes.
package token

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when no token row matches the presented value.
var ErrNotFound = errors.New("token not found")

// Token is an opaque bearer credential bound to one identity. The value is
// handed to the caller exactly once, at issuance; there is no expiry.
type Token struct {
	ID        string    `json:"id,omitempty"`
	Value     string    `json:"token"`
	UserID    string    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Repo is the persistence port for bearer tokens. Values are unique.
type Repo interface {
	Create(ctx context.Context, token *Token) error
	GetByValue(ctx context.Context, value string) (*Token, error)
}
