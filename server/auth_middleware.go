package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/tilhub/acronyms/auth"
	"github.com/tilhub/acronyms/users"
)

// RequireSessionAuth is middleware for HTML routes that only make sense for a
// logged-in browser. Anonymous sessions are bounced to the login page.
func (s *Server) RequireSessionAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			user, err := s.services.Sessions.Current(r.Context(), sessionKey(r))
			if err != nil {
				s.log.Error().Err(err).Msg("session lookup failed")
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if user == nil {
				http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
				return
			}
			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireTokenAuth is middleware for API routes that validates a Bearer token
// from the Authorization header. Missing, malformed and unknown tokens are
// indistinguishable to the caller.
func (s *Server) RequireTokenAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			value := ""
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				value = parts[1]
			}

			user, err := s.services.Tokens.Validate(r.Context(), value)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthenticated) {
					writeJSONError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				s.log.Error().Err(err).Msg("token validation failed")
				writeJSONError(w, http.StatusInternalServerError, "internal error")
				return
			}
			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next(w, r.WithContext(ctx))
		}
	}
}

// currentUser returns the identity injected by the auth middleware, nil when
// the route ran without one.
func currentUser(r *http.Request) *users.User {
	user, _ := r.Context().Value(ContextKeyUser).(*users.User)
	return user
}
