package oauthlogin

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

const githubUserAPIURL = "https://api.github.com/user"

var _ Provider = (*GitHub)(nil)

// GitHub logs users in via GitHub OAuth. The login handle is the
// provider-stable identifier.
type GitHub struct {
	oauth   *oauth2.Config
	userAPI string
	client  *http.Client
}

func NewGitHub(clientID, clientSecret, redirectURL string) *GitHub {
	return &GitHub{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     endpoints.GitHub,
		},
		userAPI: githubUserAPIURL,
		client:  http.DefaultClient,
	}
}

func (g *GitHub) Name() string { return "github" }

func (g *GitHub) AuthCodeURL(state string) string {
	return g.oauth.AuthCodeURL(state)
}

func (g *GitHub) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(ErrUpstream, err.Error())
	}
	return tok, nil
}

func (g *GitHub) FetchProfile(ctx context.Context, tok *oauth2.Token) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userAPI, nil)
	if err != nil {
		return Profile{}, errors.Wrap(err, "[GitHub.FetchProfile] build request")
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
		return Profile{}, errors.Wrapf(ErrUpstream, "user endpoint returned %d", resp.StatusCode)
	}

	var info struct {
		Login string `json:"login"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Profile{}, errors.Wrap(ErrUpstream, err.Error())
	}
	return Profile{Identifier: info.Login, Name: info.Name}, nil
}
