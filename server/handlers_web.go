package server

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tilhub/acronyms/acronyms"
	"github.com/tilhub/acronyms/categories"
	"github.com/tilhub/acronyms/users"
)

// sessionUser returns the logged-in identity for the request's session, nil
// for anonymous browsers. Public pages use it to switch the navigation bar.
func (s *Server) sessionUser(r *http.Request) *users.User {
	if user := currentUser(r); user != nil {
		return user
	}
	user, err := s.services.Sessions.Current(r.Context(), sessionKey(r))
	if err != nil {
		return nil
	}
	return user
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(r.PathValue(name), 10, 64)
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data map[string]any) {
	if err := s.render.Render(w, name, data); err != nil {
		s.log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

// renderPageStatus renders a page with a non-200 status. The Content-Type
// header has to land before the status line does.
func (s *Server) renderPageStatus(w http.ResponseWriter, status int, name string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	s.renderPage(w, name, data)
}

// IndexHandler renders the home page with every acronym on it.
func (s *Server) IndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := s.repos.Acronyms.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		s.renderPage(w, "index.html", map[string]any{
			"AppName":  s.config.GetAppName(),
			"User":     s.sessionUser(r),
			"Acronyms": all,
		})
	}
}

// AcronymPageHandler renders a single acronym with its owner and tags.
func (s *Server) AcronymPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "acronymID")
		if err != nil {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		acronym, err := s.repos.Acronyms.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, acronyms.ErrNotFound) {
				http.Error(w, "404 - Page Not Found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		owner, err := s.repos.Users.GetByID(r.Context(), acronym.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		tags, err := s.repos.Pivot.CategoriesFor(r.Context(), acronym.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		s.renderPage(w, "acronym.html", map[string]any{
			"AppName":    s.config.GetAppName(),
			"User":       s.sessionUser(r),
			"Acronym":    acronym,
			"Owner":      owner.Public(),
			"Categories": tags,
		})
	}
}

// UsersPageHandler renders the list of registered users.
func (s *Server) UsersPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := s.repos.Users.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		public := make([]users.Public, 0, len(all))
		for _, user := range all {
			public = append(public, user.Public())
		}
		s.renderPage(w, "users.html", map[string]any{
			"AppName": s.config.GetAppName(),
			"User":    s.sessionUser(r),
			"Users":   public,
		})
	}
}

// UserPageHandler renders one user and the acronyms they created.
func (s *Server) UserPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("userID")
		user, err := s.repos.Users.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				http.Error(w, "404 - Page Not Found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		owned, err := s.repos.Acronyms.ListByUser(r.Context(), user.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		s.renderPage(w, "user.html", map[string]any{
			"AppName":  s.config.GetAppName(),
			"User":     s.sessionUser(r),
			"Profile":  user.Public(),
			"Acronyms": owned,
		})
	}
}

// CategoriesPageHandler renders the list of tags.
func (s *Server) CategoriesPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := s.repos.Categories.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		s.renderPage(w, "categories.html", map[string]any{
			"AppName":    s.config.GetAppName(),
			"User":       s.sessionUser(r),
			"Categories": all,
		})
	}
}

// CategoryPageHandler renders one tag and the acronyms filed under it.
func (s *Server) CategoryPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "categoryID")
		if err != nil {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		category, err := s.repos.Categories.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, categories.ErrNotFound) {
				http.Error(w, "404 - Page Not Found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		tagged, err := s.repos.Pivot.AcronymsFor(r.Context(), category.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		s.renderPage(w, "category.html", map[string]any{
			"AppName":  s.config.GetAppName(),
			"User":     s.sessionUser(r),
			"Category": category,
			"Acronyms": tagged,
		})
	}
}
