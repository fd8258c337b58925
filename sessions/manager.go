package sessions

import (
	"context"
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
	"github.com/tilhub/acronyms/auth"
	"github.com/tilhub/acronyms/users"
)

const keyGenerationLength = 32

// Manager tracks which identity, if any, is bound to each session key.
// Per key the state machine is Anonymous -> Authenticated -> Anonymous;
// re-authenticating simply overwrites the bound identity.
type Manager struct {
	store Store
	users users.Repo
}

func NewManager(store Store, userRepo users.Repo) *Manager {
	return &Manager{store: store, users: userRepo}
}

// NewKey mints a fresh random session key for a first-contact browser.
func NewKey() (string, error) {
	bytes := make([]byte, keyGenerationLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "[sessions.NewKey] rand.Read")
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// Authenticate binds the identity to the session key. Idempotent.
func (m *Manager) Authenticate(key string, user *users.User) error {
	return m.store.Update(key, func(s *Session) {
		s.UserID = user.ID
	})
}

// Deauthenticate clears the bound identity. The ephemeral bag is left alone:
// one-shot values such as CSRF tokens survive logout until consumed.
func (m *Manager) Deauthenticate(key string) error {
	return m.store.Update(key, func(s *Session) {
		s.UserID = ""
	})
}

// Current returns the authenticated identity for the session, or nil when the
// session is anonymous. Anonymity is not an error; callers decide whether it
// is allowed.
func (m *Manager) Current(ctx context.Context, key string) (*users.User, error) {
	session, err := m.store.Get(key)
	if err != nil || session.UserID == "" {
		return nil, nil
	}
	user, err := m.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "[Manager.Current] get user")
	}
	return user, nil
}

// Require returns the authenticated identity or auth.ErrUnauthenticated for
// routes that must reject anonymous callers.
func (m *Manager) Require(ctx context.Context, key string) (*users.User, error) {
	user, err := m.Current(ctx, key)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, auth.ErrUnauthenticated
	}
	return user, nil
}

// SetValue stores a value in the session's ephemeral bag, overwriting any
// prior value under the same name.
func (m *Manager) SetValue(key, name, value string) error {
	return m.store.Update(key, func(s *Session) {
		s.Values[name] = value
	})
}

// Value reads a bag entry without consuming it.
func (m *Manager) Value(key, name string) (string, bool) {
	session, err := m.store.Get(key)
	if err != nil {
		return "", false
	}
	value, ok := session.Values[name]
	return value, ok
}

// TakeValue reads and deletes a bag entry in one atomic step, so a value can
// be consumed at most once even under concurrent submissions.
func (m *Manager) TakeValue(key, name string) (string, bool) {
	var value string
	var ok bool
	_ = m.store.Update(key, func(s *Session) {
		value, ok = s.Values[name]
		delete(s.Values, name)
	})
	return value, ok
}
