// Package sessions provides cookie-backed, server-side session state for the
// browser flows. The cookie carries only the session key; everything else
// lives in the store.
package sessions

import (
	"time"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when the session key is unknown to the store.
var ErrNotFound = errors.New("session not found")

// Session is the server-side record for one browser client. UserID is set
// exactly when the client is logged in. Values is the ephemeral key/value bag
// used for one-shot state such as CSRF tokens and the pending password-reset
// identity; entries are removed individually as they are consumed, never as a
// side effect of login or logout.
type Session struct {
	Key       string
	UserID    string
	Values    map[string]string
	CreatedAt time.Time
}

// Store is a shared keyed mapping from session key to record. Update applies
// its mutation as a single atomic read-modify-write for the key, creating the
// record if it does not exist yet, so two concurrent requests on the same
// session cannot lose each other's writes.
type Store interface {
	Get(key string) (Session, error)
	Update(key string, fn func(*Session)) error
	Delete(key string) error
}
