package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tilhub/acronyms/auth"
	"github.com/tilhub/acronyms/users"
	fakeuserrepo "github.com/tilhub/acronyms/users/repofake"
)

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		svc := auth.NewService(fakeuserrepo.NewFakeUserRepo())

		user, err := svc.Register(ctx, "Tim C", "tim", "super-secret")
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.Equal(t, "tim", user.Username)
		require.NotEqual(t, "super-secret", user.PasswordHash)
		require.True(t, users.CheckPasswordHash("super-secret", user.PasswordHash))
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		svc := auth.NewService(fakeuserrepo.NewFakeUserRepo())

		_, err := svc.Register(ctx, "Tim C", "tim", "super-secret")
		require.NoError(t, err)
		_, err = svc.Register(ctx, "Other Tim", "tim", "different-secret")
		require.ErrorIs(t, err, users.ErrDuplicateUsername)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		svc := auth.NewService(fakeuserrepo.NewFakeUserRepo())

		var validationErr *auth.ValidationError

		_, err := svc.Register(ctx, "", "tim", "super-secret")
		require.ErrorAs(t, err, &validationErr)

		_, err = svc.Register(ctx, "Tim C", "", "super-secret")
		require.ErrorAs(t, err, &validationErr)
	})

	t.Run("rejects short password", func(t *testing.T) {
		svc := auth.NewService(fakeuserrepo.NewFakeUserRepo())

		var validationErr *auth.ValidationError
		_, err := svc.Register(ctx, "Tim C", "tim", "short")
		require.ErrorAs(t, err, &validationErr)
	})
}

func TestService_Verify(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) *auth.Service {
		t.Helper()
		svc := auth.NewService(fakeuserrepo.NewFakeUserRepo())
		_, err := svc.Register(ctx, "Tim C", "tim", "super-secret")
		require.NoError(t, err)
		return svc
	}

	t.Run("correct credentials resolve the user", func(t *testing.T) {
		svc := newService(t)
		user, err := svc.Verify(ctx, "tim", "super-secret")
		require.NoError(t, err)
		require.Equal(t, "tim", user.Username)
	})

	t.Run("wrong password and unknown user fail identically", func(t *testing.T) {
		svc := newService(t)

		_, wrongPassword := svc.Verify(ctx, "tim", "not-the-password")
		_, unknownUser := svc.Verify(ctx, "nobody", "super-secret")

		require.ErrorIs(t, wrongPassword, auth.ErrInvalidCredentials)
		require.ErrorIs(t, unknownUser, auth.ErrInvalidCredentials)
		require.Equal(t, wrongPassword.Error(), unknownUser.Error())
	})
}

func TestService_SetPassword(t *testing.T) {
	ctx := context.Background()
	svc := auth.NewService(fakeuserrepo.NewFakeUserRepo())

	user, err := svc.Register(ctx, "Tim C", "tim", "super-secret")
	require.NoError(t, err)

	require.NoError(t, svc.SetPassword(ctx, user, "a-new-password"))

	_, err = svc.Verify(ctx, "tim", "super-secret")
	require.ErrorIs(t, err, auth.ErrInvalidCredentials)

	verified, err := svc.Verify(ctx, "tim", "a-new-password")
	require.NoError(t, err)
	require.Equal(t, user.ID, verified.ID)
}
