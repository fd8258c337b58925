// Package oauthlogin exchanges third-party OAuth authorization results for a
// local identity. Providers form a small closed set; each supplies the two
// capabilities the shared bridge needs: exchanging an authorization code for
// an access credential, and fetching the remote profile with it.
package oauthlogin

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

var (
	// ErrUnauthorized means the provider rejected the access credential; the
	// caller should be sent back to the provider's authorization entry point.
	ErrUnauthorized = errors.New("provider rejected the access credential")
	// ErrUpstream covers every other provider-side failure.
	ErrUpstream = errors.New("provider request failed")
)

// Profile is the slice of a remote profile the bridge needs: a per-provider
// stable identifier used as the local username, and a display name.
type Profile struct {
	Identifier string
	Name       string
}

// Provider is one third-party login integration.
type Provider interface {
	Name() string
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	FetchProfile(ctx context.Context, tok *oauth2.Token) (Profile, error)
}
