package server

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/tilhub/acronyms/resetpw"
)

// ForgotPasswordGetHandler renders the address form.
func (s *Server) ForgotPasswordGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, "forgottenPassword.html", map[string]any{
			"AppName": s.config.GetAppName(),
		})
	}
}

// ForgotPasswordPostHandler requests a reset link. The confirmation page is
// the same whether or not the address belongs to an account.
func (s *Server) ForgotPasswordPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		email := r.PostFormValue("email")
		if err := s.services.Reset.Request(r.Context(), email); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		s.renderPage(w, "forgottenPasswordConfirmed.html", map[string]any{
			"AppName": s.config.GetAppName(),
		})
	}
}

// ResetPasswordGetHandler redeems the emailed token and renders the new
// password form. The token is consumed here; a reused or unknown value is
// silently sent home.
func (s *Server) ResetPasswordGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		value := r.URL.Query().Get("token")
		if value == "" {
			http.Redirect(w, r, RouteIndex, http.StatusSeeOther)
			return
		}
		_, err := s.services.Reset.Redeem(r.Context(), sessionKey(r), value)
		if err != nil {
			if errors.Is(err, resetpw.ErrInvalidToken) {
				http.Redirect(w, r, RouteIndex, http.StatusSeeOther)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		s.renderPage(w, "resetPassword.html", map[string]any{
			"AppName": s.config.GetAppName(),
			"Error":   "",
		})
	}
}

// ResetPasswordPostHandler sets the new password for the session's pending
// identity. A field mismatch re-renders the form and keeps the pending
// identity so the user can try again without a new token.
func (s *Server) ResetPasswordPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		password := r.PostFormValue("password")
		confirmPassword := r.PostFormValue("confirmPassword")

		err := s.services.Reset.Complete(r.Context(), sessionKey(r), password, confirmPassword)
		switch {
		case err == nil:
			http.Redirect(w, r, RouteLogin, http.StatusSeeOther)
		case errors.Is(err, resetpw.ErrPasswordMismatch):
			s.renderPageStatus(w, http.StatusBadRequest, "resetPassword.html", map[string]any{
				"AppName": s.config.GetAppName(),
				"Error":   "Passwords did not match",
			})
		case errors.Is(err, resetpw.ErrNoPendingReset):
			http.Redirect(w, r, RouteIndex, http.StatusSeeOther)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}
