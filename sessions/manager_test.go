package sessions_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tilhub/acronyms/auth"
	"github.com/tilhub/acronyms/sessions"
	"github.com/tilhub/acronyms/users"
	fakeuserrepo "github.com/tilhub/acronyms/users/repofake"
)

func newManager(t *testing.T) (*sessions.Manager, *users.User) {
	t.Helper()
	repo := fakeuserrepo.NewFakeUserRepo()
	user := &users.User{Name: "Tim C", Username: "tim", PasswordHash: "x"}
	require.NoError(t, repo.Create(context.Background(), user))
	return sessions.NewManager(sessions.NewInMemoryStore(), repo), user
}

func TestManager_AuthenticateLifecycle(t *testing.T) {
	ctx := context.Background()
	m, user := newManager(t)
	key, err := sessions.NewKey()
	require.NoError(t, err)

	t.Run("anonymous session has no current user", func(t *testing.T) {
		current, err := m.Current(ctx, key)
		require.NoError(t, err)
		require.Nil(t, current)

		_, err = m.Require(ctx, key)
		require.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("authenticate binds the identity", func(t *testing.T) {
		require.NoError(t, m.Authenticate(key, user))

		current, err := m.Require(ctx, key)
		require.NoError(t, err)
		require.Equal(t, user.ID, current.ID)
	})

	t.Run("deauthenticate returns the session to anonymous", func(t *testing.T) {
		require.NoError(t, m.Deauthenticate(key))

		current, err := m.Current(ctx, key)
		require.NoError(t, err)
		require.Nil(t, current)
	})
}

func TestManager_EphemeralBag(t *testing.T) {
	m, user := newManager(t)
	key, err := sessions.NewKey()
	require.NoError(t, err)

	t.Run("set and read without consuming", func(t *testing.T) {
		require.NoError(t, m.SetValue(key, "colour", "blue"))

		value, ok := m.Value(key, "colour")
		require.True(t, ok)
		require.Equal(t, "blue", value)

		value, ok = m.Value(key, "colour")
		require.True(t, ok)
		require.Equal(t, "blue", value)
	})

	t.Run("take consumes exactly once", func(t *testing.T) {
		value, ok := m.TakeValue(key, "colour")
		require.True(t, ok)
		require.Equal(t, "blue", value)

		_, ok = m.TakeValue(key, "colour")
		require.False(t, ok)
	})

	t.Run("bag survives logout", func(t *testing.T) {
		require.NoError(t, m.Authenticate(key, user))
		require.NoError(t, m.SetValue(key, "pending", "value"))
		require.NoError(t, m.Deauthenticate(key))

		value, ok := m.Value(key, "pending")
		require.True(t, ok)
		require.Equal(t, "value", value)
	})

	t.Run("sessions are isolated by key", func(t *testing.T) {
		otherKey, err := sessions.NewKey()
		require.NoError(t, err)
		_, ok := m.Value(otherKey, "pending")
		require.False(t, ok)
	})
}
