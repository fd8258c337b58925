package server

import (
	"context"
	"net/http"

	"github.com/tilhub/acronyms/sessions"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeySession stores the browser session key
	ContextKeySession ContextKey = "session_key"
	// ContextKeyUser stores the authenticated identity
	ContextKeyUser ContextKey = "user"
)

const sessionCookieName = "session_id"

func ChainMiddleware(routeFunction http.HandlerFunc, mw ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	chainedHandler := routeFunction
	// Apply middleware in reverse order
	for i := len(mw) - 1; i >= 0; i-- {
		chainedHandler = mw[i](chainedHandler)
	}
	return chainedHandler
}

// HTMLMiddleware is the standard chain for browser routes.
func (s *Server) HTMLMiddleware(mw ...func(http.HandlerFunc) http.HandlerFunc) []func(http.HandlerFunc) http.HandlerFunc {
	chained := []func(http.HandlerFunc) http.HandlerFunc{
		s.LoggingMiddleware,
		s.RecoverMiddleware,
		s.SessionMiddleware,
	}
	return append(chained, mw...)
}

// APIMiddleware is the standard chain for JSON API routes.
func (s *Server) APIMiddleware(mw ...func(http.HandlerFunc) http.HandlerFunc) []func(http.HandlerFunc) http.HandlerFunc {
	chained := []func(http.HandlerFunc) http.HandlerFunc{
		s.LoggingMiddleware,
		s.RecoverMiddleware,
	}
	return append(chained, mw...)
}

// SessionMiddleware makes sure every browser request runs with a session key,
// minting the cookie on first contact.
func (s *Server) SessionMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := ""
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			key = cookie.Value
		}
		if key == "" {
			minted, err := sessions.NewKey()
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			key = minted
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    key,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), ContextKeySession, key)
		next(w, r.WithContext(ctx))
	}
}

func (s *Server) LoggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.env == "DEV" {
			s.logRoute(r.Method, r.URL.Path)
		}
		next(w, r)
	}
}

func (s *Server) RecoverMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("handler panicked")
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next(w, r)
	}
}

// sessionKey returns the request's session key; empty outside the session
// middleware.
func sessionKey(r *http.Request) string {
	key, _ := r.Context().Value(ContextKeySession).(string)
	return key
}
