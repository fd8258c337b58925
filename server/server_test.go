package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	fakeacronymrepo "github.com/tilhub/acronyms/acronyms/repofake"
	"github.com/tilhub/acronyms/auth"
	"github.com/tilhub/acronyms/categories"
	fakecategoryrepo "github.com/tilhub/acronyms/categories/repofake"
	"github.com/tilhub/acronyms/csrf"
	"github.com/tilhub/acronyms/mail"
	"github.com/tilhub/acronyms/oauthlogin"
	"github.com/tilhub/acronyms/resetpw"
	fakeresetrepo "github.com/tilhub/acronyms/resetpw/repofake"
	"github.com/tilhub/acronyms/server"
	"github.com/tilhub/acronyms/sessions"
	"github.com/tilhub/acronyms/token"
	faketokenrepo "github.com/tilhub/acronyms/token/repofake"
	fakeuserrepo "github.com/tilhub/acronyms/users/repofake"
	"golang.org/x/oauth2"
)

// testConfig satisfies the config interface without touching the environment.
type testConfig struct{}

func (testConfig) GetPort() string               { return ":0" }
func (testConfig) GetAppName() string            { return "TIL Acronyms" }
func (testConfig) GetBaseURL() string            { return "http://localhost:8080" }
func (testConfig) GetDatabaseDSN() string        { return "" }
func (testConfig) GetSmtpHost() string           { return "" }
func (testConfig) GetSmtpPort() string           { return "" }
func (testConfig) GetSmtpAccount() string        { return "" }
func (testConfig) GetSmtpPassword() string       { return "" }
func (testConfig) GetEnv() string                { return "TEST" }
func (testConfig) GetGoogleClientID() string     { return "" }
func (testConfig) GetGoogleClientSecret() string { return "" }
func (testConfig) GetGitHubClientID() string     { return "" }
func (testConfig) GetGitHubClientSecret() string { return "" }

type fixture struct {
	ts     *httptest.Server
	client *http.Client
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithProviders(t)
}

func newFixtureWithProviders(t *testing.T, providers ...oauthlogin.Provider) *fixture {
	t.Helper()

	userRepo := fakeuserrepo.NewFakeUserRepo()
	acronymRepo := fakeacronymrepo.NewFakeAcronymRepo()
	categoryRepo := fakecategoryrepo.NewFakeCategoryRepo(acronymRepo)
	repos := server.Repos{
		Users:      userRepo,
		Acronyms:   acronymRepo,
		Categories: categoryRepo,
		Pivot:      categoryRepo,
	}

	log := zerolog.Nop()
	sessionManager := sessions.NewManager(sessions.NewInMemoryStore(), userRepo)
	credentials := auth.NewService(userRepo)
	services := server.Services{
		Credentials: credentials,
		Tokens:      token.New(faketokenrepo.NewFakeTokenRepo(), userRepo),
		Sessions:    sessionManager,
		CSRF:        csrf.NewGuard(sessionManager),
		OAuth:       oauthlogin.NewBridge(userRepo, sessionManager, log, providers...),
		Reset:       resetpw.NewFlow(userRepo, fakeresetrepo.NewFakeResetRepo(), credentials, sessionManager, mail.NewLogDispatcher(log), "http://localhost:8080", log),
		Sync:        categories.NewSynchronizer(categoryRepo, categoryRepo),
	}

	srv, err := server.New(testConfig{}, repos, services, log)
	require.NoError(t, err)

	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return &fixture{ts: ts, client: client}
}

func (f *fixture) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := f.client.Get(f.ts.URL + path)
	require.NoError(t, err)
	return resp
}

func (f *fixture) postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := f.client.PostForm(f.ts.URL+path, form)
	require.NoError(t, err)
	return resp
}

func (f *fixture) register(t *testing.T, name, username, password string) {
	t.Helper()
	resp := f.postForm(t, "/register", url.Values{
		"name":     {name},
		"username": {username},
		"password": {password},
	})
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestWebPages(t *testing.T) {
	f := newFixture(t)

	t.Run("index renders for anonymous browsers", func(t *testing.T) {
		resp := f.get(t, "/")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Contains(t, body(t, resp), "TIL Acronyms")
	})

	t.Run("first contact sets the session cookie", func(t *testing.T) {
		base, err := url.Parse(f.ts.URL)
		require.NoError(t, err)
		var found bool
		for _, cookie := range f.client.Jar.Cookies(base) {
			if cookie.Name == "session_id" {
				found = true
			}
		}
		require.True(t, found)
	})

	t.Run("create form redirects anonymous browsers to login", func(t *testing.T) {
		resp := f.get(t, "/acronyms/create")
		resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		require.Equal(t, "/login", resp.Header.Get("Location"))
	})

	t.Run("unknown acronym is a 404", func(t *testing.T) {
		resp := f.get(t, "/acronyms/99")
		resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestWebLogin(t *testing.T) {
	t.Run("register then log out then log back in", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "Tim C", "tim", "super-secret")

		resp := f.postForm(t, "/logout", nil)
		resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)

		resp = f.get(t, "/acronyms/create")
		resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)

		resp = f.postForm(t, "/login", url.Values{"username": {"tim"}, "password": {"super-secret"}})
		resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)

		resp = f.get(t, "/acronyms/create")
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("wrong password redirects back to the login form", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "Tim C", "tim", "super-secret")

		resp := f.postForm(t, "/login", url.Values{"username": {"tim"}, "password": {"wrong"}})
		resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		require.Equal(t, "/login?error", resp.Header.Get("Location"))

		form := f.get(t, "/login?error")
		require.Equal(t, http.StatusOK, form.StatusCode)
		require.Contains(t, body(t, form), "Invalid username or password")
	})

	t.Run("duplicate registration redirects with the reason", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "Tim C", "tim", "super-secret")

		resp := f.postForm(t, "/register", url.Values{
			"name":     {"Other Tim"},
			"username": {"tim"},
			"password": {"different-secret"},
		})
		resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		location := resp.Header.Get("Location")
		require.Contains(t, location, "/register?message=")

		form := f.get(t, location)
		require.Equal(t, http.StatusOK, form.StatusCode)
		require.Contains(t, body(t, form), "already taken")
	})

	t.Run("short password redirects with the reason", func(t *testing.T) {
		f := newFixture(t)

		resp := f.postForm(t, "/register", url.Values{
			"name":     {"Shorty"},
			"username": {"shorty"},
			"password": {"short"},
		})
		resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		require.Contains(t, resp.Header.Get("Location"), "/register?message=")
	})
}

// stubProvider stands in for a real OAuth integration, failing wherever the
// test injects an error.
type stubProvider struct {
	name        string
	profile     oauthlogin.Profile
	exchangeErr error
	profileErr  error
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) AuthCodeURL(state string) string {
	return "https://provider.example/auth?state=" + url.QueryEscape(state)
}

func (p *stubProvider) Exchange(_ context.Context, _ string) (*oauth2.Token, error) {
	if p.exchangeErr != nil {
		return nil, p.exchangeErr
	}
	return &oauth2.Token{AccessToken: "stub-access"}, nil
}

func (p *stubProvider) FetchProfile(_ context.Context, _ *oauth2.Token) (oauthlogin.Profile, error) {
	if p.profileErr != nil {
		return oauthlogin.Profile{}, p.profileErr
	}
	return p.profile, nil
}

func TestOAuthLogin(t *testing.T) {
	// startFlow hits the provider login route and lifts the state parameter
	// out of the redirect, the way a browser would carry it to the callback.
	startFlow := func(t *testing.T, f *fixture) string {
		t.Helper()
		resp := f.get(t, "/login-google")
		resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		redirect, err := url.Parse(resp.Header.Get("Location"))
		require.NoError(t, err)
		state := redirect.Query().Get("state")
		require.NotEmpty(t, state)
		return state
	}

	t.Run("callback logs the browser in", func(t *testing.T) {
		provider := &stubProvider{name: "google", profile: oauthlogin.Profile{Identifier: "google-123", Name: "Tim C"}}
		f := newFixtureWithProviders(t, provider)
		state := startFlow(t, f)

		resp := f.get(t, "/google-callback?state="+url.QueryEscape(state)+"&code=good")
		resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		require.Equal(t, "/", resp.Header.Get("Location"))

		page := f.get(t, "/acronyms/create")
		page.Body.Close()
		require.Equal(t, http.StatusOK, page.StatusCode)
	})

	t.Run("rejected code restarts the flow", func(t *testing.T) {
		provider := &stubProvider{name: "google", exchangeErr: oauthlogin.ErrUnauthorized}
		f := newFixtureWithProviders(t, provider)
		state := startFlow(t, f)

		resp := f.get(t, "/google-callback?state="+url.QueryEscape(state)+"&code=bad")
		resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		require.Equal(t, "/login-google", resp.Header.Get("Location"))
	})

	t.Run("profile fetch failure is a server error", func(t *testing.T) {
		provider := &stubProvider{name: "google", profileErr: oauthlogin.ErrUpstream}
		f := newFixtureWithProviders(t, provider)
		state := startFlow(t, f)

		resp := f.get(t, "/google-callback?state="+url.QueryEscape(state)+"&code=good")
		resp.Body.Close()
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("state mismatch restarts the flow", func(t *testing.T) {
		provider := &stubProvider{name: "google", profile: oauthlogin.Profile{Identifier: "google-123", Name: "Tim C"}}
		f := newFixtureWithProviders(t, provider)
		startFlow(t, f)

		resp := f.get(t, "/google-callback?state=forged&code=good")
		resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		require.Equal(t, "/login-google", resp.Header.Get("Location"))
	})

	t.Run("unconfigured provider is a 404", func(t *testing.T) {
		f := newFixture(t)
		resp := f.get(t, "/login-google")
		resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

var csrfTokenPattern = regexp.MustCompile(`name="csrfToken" value="([^"]+)"`)

func extractCSRFToken(t *testing.T, html string) string {
	t.Helper()
	match := csrfTokenPattern.FindStringSubmatch(html)
	require.Len(t, match, 2)
	return match[1]
}

func TestCreateAcronymForm(t *testing.T) {
	t.Run("form token is required and single use", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "Tim C", "tim", "super-secret")

		resp := f.get(t, "/acronyms/create")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		formToken := extractCSRFToken(t, body(t, resp))

		submit := func(token string) *http.Response {
			return f.postForm(t, "/acronyms/create", url.Values{
				"csrfToken":  {token},
				"short":      {"OMG"},
				"long":       {"Oh My God"},
				"categories": {"Internet", "Teenager"},
			})
		}

		missing := submit("")
		missing.Body.Close()
		require.Equal(t, http.StatusBadRequest, missing.StatusCode)

		// The failed submission consumed the minted token; fetch a new one.
		resp = f.get(t, "/acronyms/create")
		formToken = extractCSRFToken(t, body(t, resp))

		created := submit(formToken)
		created.Body.Close()
		require.Equal(t, http.StatusSeeOther, created.StatusCode)
		require.Regexp(t, `^/acronyms/\d+$`, created.Header.Get("Location"))

		replay := submit(formToken)
		replay.Body.Close()
		require.Equal(t, http.StatusBadRequest, replay.StatusCode)
	})

	t.Run("created acronym shows up with its categories", func(t *testing.T) {
		f := newFixture(t)
		f.register(t, "Tim C", "tim", "super-secret")

		resp := f.get(t, "/acronyms/create")
		formToken := extractCSRFToken(t, body(t, resp))

		created := f.postForm(t, "/acronyms/create", url.Values{
			"csrfToken":  {formToken},
			"short":      {"OMG"},
			"long":       {"Oh My God"},
			"categories": {"Internet"},
		})
		created.Body.Close()
		location := created.Header.Get("Location")

		page := f.get(t, location)
		html := body(t, page)
		require.Contains(t, html, "OMG")
		require.Contains(t, html, "Oh My God")
		require.Contains(t, html, "Internet")
		require.Contains(t, html, "Tim C")
	})
}

func TestForgottenPassword(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Tim C", "tim@example.com", "super-secret")
	logout := f.postForm(t, "/logout", nil)
	logout.Body.Close()

	t.Run("known and unknown addresses get the same page", func(t *testing.T) {
		known := f.postForm(t, "/forgottenPassword", url.Values{"email": {"tim@example.com"}})
		unknown := f.postForm(t, "/forgottenPassword", url.Values{"email": {"nobody@example.com"}})
		require.Equal(t, http.StatusOK, known.StatusCode)
		require.Equal(t, http.StatusOK, unknown.StatusCode)
		require.Equal(t, body(t, known), body(t, unknown))
	})

	t.Run("invalid token on the reset page goes home", func(t *testing.T) {
		resp := f.get(t, "/resetPassword?token=not-a-token")
		resp.Body.Close()
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		require.Equal(t, "/", resp.Header.Get("Location"))
	})
}

func TestAPIUsers(t *testing.T) {
	f := newFixture(t)

	t.Run("create user", func(t *testing.T) {
		resp := f.postJSON(t, "/api/users", map[string]string{
			"name":     "Tim C",
			"username": "tim",
			"password": "super-secret",
		}, "")
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		resp.Body.Close()
		require.Equal(t, "tim", created["username"])
		require.NotEmpty(t, created["id"])
		require.NotContains(t, created, "password_hash")
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		resp := f.postJSON(t, "/api/users", map[string]string{
			"name":     "Other Tim",
			"username": "tim",
			"password": "different-secret",
		}, "")
		resp.Body.Close()
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("short password is a bad request", func(t *testing.T) {
		resp := f.postJSON(t, "/api/users", map[string]string{
			"name":     "Shorty",
			"username": "shorty",
			"password": "short",
		}, "")
		resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("basic login issues a bearer token", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, f.ts.URL+"/api/users/login", nil)
		require.NoError(t, err)
		req.SetBasicAuth("tim", "super-secret")
		resp, err := f.client.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var issued map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&issued))
		resp.Body.Close()
		require.NotEmpty(t, issued["token"])
	})

	t.Run("wrong basic credentials are rejected", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, f.ts.URL+"/api/users/login", nil)
		require.NoError(t, err)
		req.SetBasicAuth("tim", "wrong")
		resp, err := f.client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func (f *fixture) postJSON(t *testing.T, path string, payload any, bearer string) *http.Response {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, f.ts.URL+path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := f.client.Do(req)
	require.NoError(t, err)
	return resp
}

// apiToken registers an account over the API and logs it in for a bearer
// token.
func (f *fixture) apiToken(t *testing.T, username, password string) string {
	t.Helper()
	resp := f.postJSON(t, "/api/users", map[string]string{
		"name":     "API User",
		"username": username,
		"password": password,
	}, "")
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, f.ts.URL+"/api/users/login", nil)
	require.NoError(t, err)
	req.SetBasicAuth(username, password)
	resp, err = f.client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var issued struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&issued))
	resp.Body.Close()
	require.NotEmpty(t, issued.Token)
	return issued.Token
}

func TestAPIAcronyms(t *testing.T) {
	f := newFixture(t)
	bearer := f.apiToken(t, "tim", "super-secret")

	t.Run("create requires a token", func(t *testing.T) {
		resp := f.postJSON(t, "/api/acronyms", map[string]string{"short": "OMG", "long": "Oh My God"}, "")
		resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		resp = f.postJSON(t, "/api/acronyms", map[string]string{"short": "OMG", "long": "Oh My God"}, "bogus")
		resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	var acronymID int64
	t.Run("create with a valid token", func(t *testing.T) {
		resp := f.postJSON(t, "/api/acronyms", map[string]string{"short": "OMG", "long": "Oh My God"}, bearer)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created struct {
			ID     int64  `json:"id"`
			UserID string `json:"user_id"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		resp.Body.Close()
		require.NotZero(t, created.ID)
		require.NotEmpty(t, created.UserID)
		acronymID = created.ID
	})

	t.Run("search needs a term", func(t *testing.T) {
		resp := f.get(t, "/api/acronyms/search")
		resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("search matches exactly", func(t *testing.T) {
		resp := f.get(t, "/api/acronyms/search?term=OMG")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var matches []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&matches))
		resp.Body.Close()
		require.Len(t, matches, 1)

		resp = f.get(t, "/api/acronyms/search?term=omg")
		var misses []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&misses))
		resp.Body.Close()
		require.Empty(t, misses)
	})

	t.Run("attach and detach a category", func(t *testing.T) {
		resp := f.postJSON(t, "/api/categories", map[string]string{"name": "Internet"}, bearer)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var category struct {
			ID int64 `json:"id"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&category))
		resp.Body.Close()

		pivot := fmt.Sprintf("/api/acronyms/%d/categories/%d", acronymID, category.ID)

		req, err := http.NewRequest(http.MethodPost, f.ts.URL+pivot, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+bearer)
		attach, err := f.client.Do(req)
		require.NoError(t, err)
		attach.Body.Close()
		require.Equal(t, http.StatusCreated, attach.StatusCode)

		// Attaching the same pair again succeeds without duplicating it.
		req, err = http.NewRequest(http.MethodPost, f.ts.URL+pivot, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+bearer)
		again, err := f.client.Do(req)
		require.NoError(t, err)
		again.Body.Close()
		require.Equal(t, http.StatusCreated, again.StatusCode)

		listing := f.get(t, fmt.Sprintf("/api/acronyms/%d/categories", acronymID))
		var attached []map[string]any
		require.NoError(t, json.NewDecoder(listing.Body).Decode(&attached))
		listing.Body.Close()
		require.Len(t, attached, 1)

		req, err = http.NewRequest(http.MethodDelete, f.ts.URL+pivot, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+bearer)
		detach, err := f.client.Do(req)
		require.NoError(t, err)
		detach.Body.Close()
		require.Equal(t, http.StatusNoContent, detach.StatusCode)

		listing = f.get(t, fmt.Sprintf("/api/acronyms/%d/categories", acronymID))
		attached = nil
		require.NoError(t, json.NewDecoder(listing.Body).Decode(&attached))
		listing.Body.Close()
		require.Empty(t, attached)
	})

	t.Run("update reassigns ownership to the caller", func(t *testing.T) {
		other := f.apiToken(t, "sam", "another-secret")

		b, err := json.Marshal(map[string]string{"short": "OMG", "long": "Oh My Goodness"})
		require.NoError(t, err)
		req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/api/acronyms/%d", f.ts.URL, acronymID), bytes.NewReader(b))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+other)
		resp, err := f.client.Do(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var updated struct {
			Long   string `json:"long"`
			UserID string `json:"user_id"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
		resp.Body.Close()
		require.Equal(t, "Oh My Goodness", updated.Long)

		owner := f.get(t, fmt.Sprintf("/api/acronyms/%d/user", acronymID))
		var ownerBody struct {
			Username string `json:"username"`
		}
		require.NoError(t, json.NewDecoder(owner.Body).Decode(&ownerBody))
		owner.Body.Close()
		require.Equal(t, "sam", ownerBody.Username)
	})

	t.Run("delete", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/acronyms/%d", f.ts.URL, acronymID), nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+bearer)
		resp, err := f.client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		gone := f.get(t, fmt.Sprintf("/api/acronyms/%d", acronymID))
		gone.Body.Close()
		require.Equal(t, http.StatusNotFound, gone.StatusCode)
	})
}
