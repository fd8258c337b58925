// Package csrf guards state-changing form submissions with a one-time token
// bound to the submitting session.
package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"

	"github.com/pkg/errors"
	"github.com/tilhub/acronyms/sessions"
)

// bagKey is the reserved name under which the pending token lives in the
// session's ephemeral bag. At most one token is outstanding per session.
const bagKey = "csrf_token"

const tokenGenerationLength = 32

// ErrMismatch is returned when the presented token does not match the pending
// one, or no token is pending for the session.
var ErrMismatch = errors.New("csrf token mismatch")

// Guard mints tokens when a protected form is rendered and validates them on
// the next submission from the same session.
type Guard struct {
	sessions *sessions.Manager
}

func NewGuard(sessionManager *sessions.Manager) *Guard {
	return &Guard{sessions: sessionManager}
}

// Mint generates a random token and stores it in the session bag, replacing
// any previously pending token for that session.
func (g *Guard) Mint(sessionKey string) (string, error) {
	bytes := make([]byte, tokenGenerationLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "[Guard.Mint] rand.Read")
	}
	token := base64.URLEncoding.EncodeToString(bytes)
	if err := g.sessions.SetValue(sessionKey, bagKey, token); err != nil {
		return "", errors.Wrap(err, "[Guard.Mint] store token")
	}
	return token, nil
}

// Validate consumes the pending token and compares it with the presented one.
// The pending token is deleted before the comparison, whatever its outcome,
// so no value can ever validate twice.
func (g *Guard) Validate(sessionKey, presented string) error {
	expected, ok := g.sessions.TakeValue(sessionKey, bagKey)
	if !ok || presented == "" {
		return ErrMismatch
	}
	if subtle.ConstantTimeCompare([]byte(expected), []byte(presented)) != 1 {
		return ErrMismatch
	}
	return nil
}
