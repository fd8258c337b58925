package oauthlogin

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const googleIssuer = "https://accounts.google.com"

var _ Provider = (*Google)(nil)

// Google logs users in via Google's OIDC endpoints. The profile email is the
// provider-stable identifier.
type Google struct {
	oauth    *oauth2.Config
	userinfo string
	client   *http.Client
}

// NewGoogle discovers Google's endpoints and builds the provider. Discovery
// runs once, at construction.
func NewGoogle(ctx context.Context, clientID, clientSecret, redirectURL string) (*Google, error) {
	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGoogle] oidc discovery")
	}
	return &Google{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		userinfo: provider.UserInfoEndpoint(),
		client:   http.DefaultClient,
	}, nil
}

func (g *Google) Name() string { return "google" }

func (g *Google) AuthCodeURL(state string) string {
	return g.oauth.AuthCodeURL(state)
}

func (g *Google) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(ErrUpstream, err.Error())
	}
	return tok, nil
}

func (g *Google) FetchProfile(ctx context.Context, tok *oauth2.Token) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userinfo, nil)
	if err != nil {
		return Profile{}, errors.Wrap(err, "[Google.FetchProfile] build request")
	}
	tok.SetAuthHeader(req)

	resp, err := g.client.Do(req)
	if err != nil {
		return Profile{}, errors.Wrap(ErrUpstream, err.Error())
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return Profile{}, ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return Profile{}, errors.Wrapf(ErrUpstream, "userinfo returned %d", resp.StatusCode)
	}

	var info struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Profile{}, errors.Wrap(ErrUpstream, err.Error())
	}
	return Profile{Identifier: info.Email, Name: info.Name}, nil
}
