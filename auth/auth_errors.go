package auth

import "github.com/pkg/errors"

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthenticated is returned when a route requires an identity and
	// none was presented or the presented credential did not resolve.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// ValidationError carries the human-readable reason a registration form was
// rejected. Web handlers surface it as a redirect message, not an HTTP error.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
