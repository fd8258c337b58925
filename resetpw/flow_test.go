package resetpw_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/tilhub/acronyms/auth"
	"github.com/tilhub/acronyms/resetpw"
	fakeresetrepo "github.com/tilhub/acronyms/resetpw/repofake"
	"github.com/tilhub/acronyms/sessions"
	"github.com/tilhub/acronyms/users"
	fakeuserrepo "github.com/tilhub/acronyms/users/repofake"
)

// captureDispatcher records the reset links instead of sending mail.
type captureDispatcher struct {
	links []string
}

func (d *captureDispatcher) SendPasswordReset(_ context.Context, _ *users.User, resetLink string) error {
	d.links = append(d.links, resetLink)
	return nil
}

type flowFixture struct {
	flow       *resetpw.Flow
	creds      *auth.Service
	tokens     *fakeresetrepo.FakeResetRepo
	mailer     *captureDispatcher
	sessionKey string
}

func newFlowFixture(t *testing.T) *flowFixture {
	t.Helper()
	userRepo := fakeuserrepo.NewFakeUserRepo()
	tokenRepo := fakeresetrepo.NewFakeResetRepo()
	creds := auth.NewService(userRepo)
	manager := sessions.NewManager(sessions.NewInMemoryStore(), userRepo)
	mailer := &captureDispatcher{}

	_, err := creds.Register(context.Background(), "Tim C", "tim@example.com", "super-secret")
	require.NoError(t, err)

	key, err := sessions.NewKey()
	require.NoError(t, err)

	flow := resetpw.NewFlow(userRepo, tokenRepo, creds, manager, mailer, "http://localhost:8080", zerolog.Nop())
	return &flowFixture{flow: flow, creds: creds, tokens: tokenRepo, mailer: mailer, sessionKey: key}
}

// tokenFromLink pulls the token value out of the emailed link.
func tokenFromLink(t *testing.T, link string) string {
	t.Helper()
	_, value, found := strings.Cut(link, "?token=")
	require.True(t, found)
	return value
}

func TestFlow_Request(t *testing.T) {
	ctx := context.Background()

	t.Run("known address gets a link", func(t *testing.T) {
		f := newFlowFixture(t)

		require.NoError(t, f.flow.Request(ctx, "tim@example.com"))
		require.Len(t, f.mailer.links, 1)
		require.Contains(t, f.mailer.links[0], "http://localhost:8080/resetPassword?token=")
		require.Equal(t, 1, f.tokens.Outstanding())
	})

	t.Run("unknown address succeeds without a token", func(t *testing.T) {
		f := newFlowFixture(t)

		require.NoError(t, f.flow.Request(ctx, "nobody@example.com"))
		require.Empty(t, f.mailer.links)
		require.Equal(t, 0, f.tokens.Outstanding())
	})
}

func TestFlow_RedeemOnce(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t)

	require.NoError(t, f.flow.Request(ctx, "tim@example.com"))
	value := tokenFromLink(t, f.mailer.links[0])

	user, err := f.flow.Redeem(ctx, f.sessionKey, value)
	require.NoError(t, err)
	require.Equal(t, "tim@example.com", user.Username)
	require.Equal(t, 0, f.tokens.Outstanding())

	// The redeeming call deleted the row; the value never works again.
	_, err = f.flow.Redeem(ctx, f.sessionKey, value)
	require.ErrorIs(t, err, resetpw.ErrInvalidToken)
}

func TestFlow_Complete(t *testing.T) {
	ctx := context.Background()

	redeemed := func(t *testing.T) *flowFixture {
		t.Helper()
		f := newFlowFixture(t)
		require.NoError(t, f.flow.Request(ctx, "tim@example.com"))
		_, err := f.flow.Redeem(ctx, f.sessionKey, tokenFromLink(t, f.mailer.links[0]))
		require.NoError(t, err)
		return f
	}

	t.Run("changes the password and consumes the pending identity", func(t *testing.T) {
		f := redeemed(t)

		require.NoError(t, f.flow.Complete(ctx, f.sessionKey, "a-new-password", "a-new-password"))

		_, err := f.creds.Verify(ctx, "tim@example.com", "super-secret")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
		_, err = f.creds.Verify(ctx, "tim@example.com", "a-new-password")
		require.NoError(t, err)

		// Pending identity is gone; a second change needs a new token.
		err = f.flow.Complete(ctx, f.sessionKey, "another-password", "another-password")
		require.ErrorIs(t, err, resetpw.ErrNoPendingReset)
	})

	t.Run("mismatch keeps the pending identity for a retry", func(t *testing.T) {
		f := redeemed(t)

		err := f.flow.Complete(ctx, f.sessionKey, "a-new-password", "something-else")
		require.ErrorIs(t, err, resetpw.ErrPasswordMismatch)

		require.NoError(t, f.flow.Complete(ctx, f.sessionKey, "a-new-password", "a-new-password"))
		_, err = f.creds.Verify(ctx, "tim@example.com", "a-new-password")
		require.NoError(t, err)
	})

	t.Run("no pending reset", func(t *testing.T) {
		f := newFlowFixture(t)
		err := f.flow.Complete(ctx, f.sessionKey, "a-new-password", "a-new-password")
		require.ErrorIs(t, err, resetpw.ErrNoPendingReset)
	})
}
