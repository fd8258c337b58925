package server

import (
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/tilhub/acronyms/auth"
	"github.com/tilhub/acronyms/users"
)

// LoginGetHandler renders the login page. A failed attempt redirects back
// here with an "error" query flag.
func (s *Server) LoginGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		message := ""
		if r.URL.Query().Has("error") {
			message = "Invalid username or password"
		}
		s.renderPage(w, "login.html", map[string]any{
			"AppName":  s.config.GetAppName(),
			"Error":    message,
			"Username": "",
		})
	}
}

// LoginPostHandler verifies the submitted credentials and binds the identity
// to the browser session. Unknown user and wrong password take the same
// redirect back to the form.
func (s *Server) LoginPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		username := r.PostFormValue("username")
		password := r.PostFormValue("password")

		user, err := s.services.Credentials.Verify(r.Context(), username, password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				http.Redirect(w, r, RouteLogin+"?error", http.StatusSeeOther)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		if err := s.services.Sessions.Authenticate(sessionKey(r), user); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, RouteIndex, http.StatusSeeOther)
	}
}

// LogoutHandler unbinds the identity from the session. The session itself and
// its ephemeral values survive.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.services.Sessions.Deauthenticate(sessionKey(r)); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, RouteIndex, http.StatusSeeOther)
	}
}

// RegisterGetHandler renders the registration page. A failed submission
// redirects back here with the reason in the "message" query parameter.
func (s *Server) RegisterGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, "register.html", map[string]any{
			"AppName":  s.config.GetAppName(),
			"Error":    r.URL.Query().Get("message"),
			"Name":     "",
			"Username": "",
		})
	}
}

// RegisterPostHandler creates an account from the submitted form and logs the
// new identity straight in.
func (s *Server) RegisterPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		name := r.PostFormValue("name")
		username := r.PostFormValue("username")
		password := r.PostFormValue("password")

		user, err := s.services.Credentials.Register(r.Context(), name, username, password)
		if err != nil {
			s.redirectRegisterError(w, r, err)
			return
		}

		if err := s.services.Sessions.Authenticate(sessionKey(r), user); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, RouteIndex, http.StatusSeeOther)
	}
}

func (s *Server) redirectRegisterError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *auth.ValidationError
	message := ""
	switch {
	case errors.As(err, &validationErr):
		message = validationErr.Reason
	case errors.Is(err, users.ErrDuplicateUsername):
		message = "That username is already taken"
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, RouteRegister+"?message="+url.QueryEscape(message), http.StatusSeeOther)
}
