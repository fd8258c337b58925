package oauthlogin

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/tilhub/acronyms/sessions"
	"github.com/tilhub/acronyms/users"
)

// Bridge runs the shared delegation routine over the configured providers:
// exchange the callback code, fetch the profile, find or create the local
// identity, and bind it into the caller's session.
type Bridge struct {
	providers map[string]Provider
	users     users.Repo
	sessions  *sessions.Manager
	log       zerolog.Logger
}

func NewBridge(userRepo users.Repo, sessionManager *sessions.Manager, log zerolog.Logger, providers ...Provider) *Bridge {
	byName := make(map[string]Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &Bridge{providers: byName, users: userRepo, sessions: sessionManager, log: log}
}

// Provider returns the named provider, if configured.
func (b *Bridge) Provider(name string) (Provider, bool) {
	p, ok := b.providers[name]
	return p, ok
}

// Login completes a provider callback for the given session. The sequence is
// fixed: exchange, fetch profile, find-or-create, authenticate. A concurrent
// duplicate callback for the same provider identity cannot mint two local
// identities; the username unique constraint backstops the race and the loser
// re-reads the winner's row.
func (b *Bridge) Login(ctx context.Context, providerName, sessionKey, code string) error {
	provider, ok := b.providers[providerName]
	if !ok {
		return errors.Wrapf(ErrUpstream, "unknown provider %q", providerName)
	}

	tok, err := provider.Exchange(ctx, code)
	if err != nil {
		return err
	}

	profile, err := provider.FetchProfile(ctx, tok)
	if err != nil {
		return err
	}

	user, err := b.findOrCreate(ctx, profile)
	if err != nil {
		return err
	}

	if err := b.sessions.Authenticate(sessionKey, user); err != nil {
		return errors.Wrap(err, "[Bridge.Login] authenticate session")
	}
	return nil
}

// findOrCreate looks up the identity whose username is the provider-stable
// identifier, creating it on first login. New accounts get a random UUID
// placeholder password so they stay unusable via password login.
func (b *Bridge) findOrCreate(ctx context.Context, profile Profile) (*users.User, error) {
	user, err := b.users.GetByUsername(ctx, profile.Identifier)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, users.ErrNotFound) {
		return nil, errors.Wrap(err, "[Bridge.findOrCreate] lookup")
	}

	hash, err := users.HashPassword(uuid.New().String())
	if err != nil {
		return nil, errors.Wrap(err, "[Bridge.findOrCreate] hash placeholder password")
	}
	user = &users.User{
		Name:         profile.Name,
		Username:     profile.Identifier,
		PasswordHash: hash,
	}
	if err := b.users.Create(ctx, user); err != nil {
		if errors.Is(err, users.ErrDuplicateUsername) {
			// Lost the race against a concurrent callback; use its row.
			b.log.Debug().Str("username", profile.Identifier).Msg("concurrent oauth first login")
			return b.users.GetByUsername(ctx, profile.Identifier)
		}
		return nil, errors.Wrap(err, "[Bridge.findOrCreate] create")
	}
	return user, nil
}
