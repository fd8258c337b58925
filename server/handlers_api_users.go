package server

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/tilhub/acronyms/auth"
	"github.com/tilhub/acronyms/users"
)

type createUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// APICreateUserHandler registers an account from a JSON body.
func (s *Server) APICreateUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := s.services.Credentials.Register(r.Context(), req.Name, req.Username, req.Password)
		if err != nil {
			var validationErr *auth.ValidationError
			switch {
			case errors.As(err, &validationErr):
				writeJSONError(w, http.StatusBadRequest, validationErr.Reason)
			case errors.Is(err, users.ErrDuplicateUsername):
				writeJSONError(w, http.StatusConflict, "username already taken")
			default:
				writeJSONError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		writeJSON(w, http.StatusCreated, user.Public())
	}
}

// APIListUsersHandler lists every account as its public projection.
func (s *Server) APIListUsersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := s.repos.Users.List(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		public := make([]users.Public, 0, len(all))
		for _, user := range all {
			public = append(public, user.Public())
		}
		writeJSON(w, http.StatusOK, public)
	}
}

// APIUserLoginHandler trades HTTP Basic credentials for a bearer token.
func (s *Server) APIUserLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="api"`)
			writeJSONError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		user, err := s.services.Credentials.Verify(r.Context(), username, password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}

		tok, err := s.services.Tokens.Issue(r.Context(), user)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, tok)
	}
}

// APIGetUserHandler returns one account's public projection.
func (s *Server) APIGetUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := s.repos.Users.GetByID(r.Context(), r.PathValue("userID"))
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				writeJSONError(w, http.StatusNotFound, "not found")
				return
			}
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, user.Public())
	}
}

// APIUserAcronymsHandler lists the acronyms an account created.
func (s *Server) APIUserAcronymsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := s.repos.Users.GetByID(r.Context(), r.PathValue("userID"))
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				writeJSONError(w, http.StatusNotFound, "not found")
				return
			}
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		owned, err := s.repos.Acronyms.ListByUser(r.Context(), user.ID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, owned)
	}
}
