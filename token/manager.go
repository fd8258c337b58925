package token

import (
	"context"
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tilhub/acronyms/auth"
	"github.com/tilhub/acronyms/users"
)

const valueGenerationLength = 32

// Manager mints and validates bearer tokens against the shared identity store.
type Manager struct {
	tokens Repo
	users  users.Repo
}

func New(tokenRepo Repo, userRepo users.Repo) *Manager {
	return &Manager{tokens: tokenRepo, users: userRepo}
}

// Issue generates a cryptographically random opaque value and persists it
// bound to the identity. The returned value cannot be retrieved again.
func (m *Manager) Issue(ctx context.Context, user *users.User) (*Token, error) {
	bytes := make([]byte, valueGenerationLength)
	if _, err := rand.Read(bytes); err != nil {
		return nil, errors.Wrap(err, "[Manager.Issue] rand.Read")
	}

	tok := &Token{
		ID:     uuid.New().String(),
		Value:  base64.URLEncoding.EncodeToString(bytes),
		UserID: user.ID,
	}
	if err := m.tokens.Create(ctx, tok); err != nil {
		return nil, errors.Wrap(err, "[Manager.Issue] create token")
	}
	return tok, nil
}

// Validate resolves a presented bearer value to its owning identity by exact
// match. A miss, including a malformed or empty value or a token whose owner
// no longer exists, fails with auth.ErrUnauthenticated. Storage failures are
// returned as-is so callers can tell them apart from a rejected token.
func (m *Manager) Validate(ctx context.Context, presented string) (*users.User, error) {
	if presented == "" {
		return nil, auth.ErrUnauthenticated
	}
	tok, err := m.tokens.GetByValue(ctx, presented)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, auth.ErrUnauthenticated
		}
		return nil, errors.Wrap(err, "[Manager.Validate] get token")
	}
	user, err := m.users.GetByID(ctx, tok.UserID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, auth.ErrUnauthenticated
		}
		return nil, errors.Wrap(err, "[Manager.Validate] get user")
	}
	return user, nil
}
