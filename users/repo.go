package users

import "context"

// Repo is the persistence port for identities. Create must enforce username
// uniqueness atomically at the storage layer and report a collision as
// ErrDuplicateUsername; a check-then-insert implementation is not acceptable.
type Repo interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
