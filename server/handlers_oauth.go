package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tilhub/acronyms/oauthlogin"
)

// stateBagKey holds the anti-forgery state between the redirect to the
// provider and its callback.
const stateBagKey = "oauth_state"

// OAuthLoginHandler starts the delegated login dance by redirecting the
// browser to the provider's consent page with a fresh state value.
func (s *Server) OAuthLoginHandler(providerName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		provider, ok := s.services.OAuth.Provider(providerName)
		if !ok {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		state := uuid.New().String()
		if err := s.services.Sessions.SetValue(sessionKey(r), stateBagKey, state); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, provider.AuthCodeURL(state), http.StatusSeeOther)
	}
}

// OAuthCallbackHandler completes the dance. A state mismatch or an
// unauthorized provider response restarts the flow from the login redirect;
// any other upstream or local failure is an error response.
func (s *Server) OAuthCallbackHandler(providerName, restartRoute string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		expected, ok := s.services.Sessions.TakeValue(sessionKey(r), stateBagKey)
		presented := r.URL.Query().Get("state")
		if !ok || subtle.ConstantTimeCompare([]byte(expected), []byte(presented)) != 1 {
			s.log.Warn().Str("provider", providerName).Msg("oauth state mismatch")
			http.Redirect(w, r, restartRoute, http.StatusSeeOther)
			return
		}

		code := r.URL.Query().Get("code")
		err := s.services.OAuth.Login(r.Context(), providerName, sessionKey(r), code)
		if err != nil {
			if errors.Is(err, oauthlogin.ErrUnauthorized) {
				s.log.Warn().Err(err).Str("provider", providerName).Msg("oauth login rejected")
				http.Redirect(w, r, restartRoute, http.StatusSeeOther)
				return
			}
			s.log.Error().Err(err).Str("provider", providerName).Msg("oauth login failed")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, RouteIndex, http.StatusSeeOther)
	}
}
