package resetpw

import (
	"context"
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/tilhub/acronyms/auth"
	"github.com/tilhub/acronyms/mail"
	"github.com/tilhub/acronyms/sessions"
	"github.com/tilhub/acronyms/users"
)

// pendingBagKey is the session-bag slot holding the identity a redeemed token
// authorized, until the password change completes.
const pendingBagKey = "reset_pending_user"

const tokenGenerationLength = 32

var (
	// ErrPasswordMismatch is returned when the two password fields differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrNoPendingReset is returned when Complete is called for a session
	// with no redeemed token behind it.
	ErrNoPendingReset = errors.New("no pending password reset")
)

// Flow drives the Requested -> Issued -> Consumed lifecycle of reset tokens.
// Tokens do not expire; the source of truth for their validity is the
// presence of the row, which redemption removes.
type Flow struct {
	users    users.Repo
	tokens   Repo
	creds    *auth.Service
	sessions *sessions.Manager
	mailer   mail.Dispatcher
	baseURL  string
	log      zerolog.Logger
}

func NewFlow(userRepo users.Repo, tokenRepo Repo, creds *auth.Service, sessionManager *sessions.Manager, mailer mail.Dispatcher, baseURL string, log zerolog.Logger) *Flow {
	return &Flow{
		users:    userRepo,
		tokens:   tokenRepo,
		creds:    creds,
		sessions: sessionManager,
		mailer:   mailer,
		baseURL:  baseURL,
		log:      log,
	}
}

// Request issues a reset token for the account registered under email and
// hands the one-time link to the mail collaborator. An unknown address is
// reported exactly like a known one, with no token created, so the endpoint
// cannot be used to enumerate accounts.
func (f *Flow) Request(ctx context.Context, email string) error {
	user, err := f.users.GetByUsername(ctx, email)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			f.log.Debug().Msg("reset requested for unknown address")
			return nil
		}
		return errors.Wrap(err, "[Flow.Request] lookup")
	}

	bytes := make([]byte, tokenGenerationLength)
	if _, err := rand.Read(bytes); err != nil {
		return errors.Wrap(err, "[Flow.Request] rand.Read")
	}
	token := &Token{
		ID:     uuid.New().String(),
		Value:  base64.URLEncoding.EncodeToString(bytes),
		UserID: user.ID,
	}
	if err := f.tokens.Create(ctx, token); err != nil {
		return errors.Wrap(err, "[Flow.Request] create token")
	}

	link := f.baseURL + "/resetPassword?token=" + token.Value
	if err := f.mailer.SendPasswordReset(ctx, user, link); err != nil {
		return errors.Wrap(err, "[Flow.Request] dispatch mail")
	}
	return nil
}

// Redeem consumes the token and binds its identity into the session's pending
// slot. The token row is deleted by the same storage call that resolves it,
// so replaying the value, even before the password change completes, fails.
func (f *Flow) Redeem(ctx context.Context, sessionKey, value string) (*users.User, error) {
	userID, err := f.tokens.Redeem(ctx, value)
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return nil, ErrInvalidToken
		}
		return nil, errors.Wrap(err, "[Flow.Redeem] redeem token")
	}

	user, err := f.users.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "[Flow.Redeem] get user")
	}
	if err := f.sessions.SetValue(sessionKey, pendingBagKey, user.ID); err != nil {
		return nil, errors.Wrap(err, "[Flow.Redeem] bind pending identity")
	}
	return user, nil
}

// Complete changes the password for the session's pending identity. A field
// mismatch leaves the pending slot in place so the form can be resubmitted;
// success consumes it.
func (f *Flow) Complete(ctx context.Context, sessionKey, password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}

	userID, ok := f.sessions.Value(sessionKey, pendingBagKey)
	if !ok {
		return ErrNoPendingReset
	}
	user, err := f.users.GetByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "[Flow.Complete] get user")
	}
	if err := f.creds.SetPassword(ctx, user, password); err != nil {
		return errors.Wrap(err, "[Flow.Complete] set password")
	}
	f.sessions.TakeValue(sessionKey, pendingBagKey)
	return nil
}
