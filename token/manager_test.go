package token_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tilhub/acronyms/auth"
	"github.com/tilhub/acronyms/token"
	faketokenrepo "github.com/tilhub/acronyms/token/repofake"
	"github.com/tilhub/acronyms/users"
	fakeuserrepo "github.com/tilhub/acronyms/users/repofake"
)

func TestManager_IssueAndValidate(t *testing.T) {
	ctx := context.Background()
	userRepo := fakeuserrepo.NewFakeUserRepo()
	user := &users.User{Name: "Tim C", Username: "tim", PasswordHash: "x"}
	require.NoError(t, userRepo.Create(ctx, user))
	m := token.New(faketokenrepo.NewFakeTokenRepo(), userRepo)

	tok, err := m.Issue(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Value)
	require.Equal(t, user.ID, tok.UserID)

	t.Run("the exact value resolves its owner", func(t *testing.T) {
		resolved, err := m.Validate(ctx, tok.Value)
		require.NoError(t, err)
		require.Equal(t, user.ID, resolved.ID)
	})

	t.Run("distinct tokens for the same user", func(t *testing.T) {
		second, err := m.Issue(ctx, user)
		require.NoError(t, err)
		require.NotEqual(t, tok.Value, second.Value)
	})

	t.Run("unknown value is unauthenticated", func(t *testing.T) {
		_, err := m.Validate(ctx, "made-up-token")
		require.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("empty value is unauthenticated", func(t *testing.T) {
		_, err := m.Validate(ctx, "")
		require.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("prefix of a valid value is unauthenticated", func(t *testing.T) {
		_, err := m.Validate(ctx, tok.Value[:len(tok.Value)-1])
		require.ErrorIs(t, err, auth.ErrUnauthenticated)
	})

	t.Run("token whose owner is gone is unauthenticated", func(t *testing.T) {
		tokenRepo := faketokenrepo.NewFakeTokenRepo()
		orphan := &token.Token{ID: "orphan", Value: "orphan-value", UserID: "no-such-user"}
		require.NoError(t, tokenRepo.Create(ctx, orphan))
		orphaned := token.New(tokenRepo, fakeuserrepo.NewFakeUserRepo())

		_, err := orphaned.Validate(ctx, orphan.Value)
		require.ErrorIs(t, err, auth.ErrUnauthenticated)
	})
}

// brokenTokenRepo fails every call the way a down database would.
type brokenTokenRepo struct{ err error }

func (r *brokenTokenRepo) Create(ctx context.Context, tok *token.Token) error { return r.err }
func (r *brokenTokenRepo) GetByValue(ctx context.Context, value string) (*token.Token, error) {
	return nil, r.err
}

func TestManager_ValidateStorageFailure(t *testing.T) {
	ctx := context.Background()
	repoErr := errors.New("connection refused")
	m := token.New(&brokenTokenRepo{err: repoErr}, fakeuserrepo.NewFakeUserRepo())

	_, err := m.Validate(ctx, "any-value")
	require.Error(t, err)
	require.NotErrorIs(t, err, auth.ErrUnauthenticated)
	require.ErrorIs(t, err, repoErr)
}
