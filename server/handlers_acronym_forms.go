package server

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/tilhub/acronyms/acronyms"
)

func acronymPagePath(id int64) string {
	return "/acronyms/" + strconv.FormatInt(id, 10)
}

// CreateAcronymGetHandler renders the create form with a freshly minted
// one-time token baked into it.
func (s *Server) CreateAcronymGetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := s.services.CSRF.Mint(sessionKey(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		s.renderPage(w, "createAcronym.html", map[string]any{
			"AppName":   s.config.GetAppName(),
			"User":      currentUser(r),
			"CSRFToken": token,
		})
	}
}

// CreateAcronymPostHandler validates the one-time token, creates the acronym
// for the logged-in identity and synchronizes its tags.
func (s *Server) CreateAcronymPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if err := s.services.CSRF.Validate(sessionKey(r), r.PostFormValue("csrfToken")); err != nil {
			http.Error(w, "invalid form token", http.StatusBadRequest)
			return
		}

		acronym := &acronyms.Acronym{
			Short:  r.PostFormValue("short"),
			Long:   r.PostFormValue("long"),
			UserID: currentUser(r).ID,
		}
		if err := s.repos.Acronyms.Create(r.Context(), acronym); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if err := s.services.Sync.Sync(r.Context(), acronym.ID, formCategories(r)); err != nil {
			s.log.Error().Err(err).Int64("acronym_id", acronym.ID).Msg("category sync failed")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, acronymPagePath(acronym.ID), http.StatusSeeOther)
	}
}

// EditAcronymGetHandler renders the edit form prefilled with the acronym and
// its current tags.
func (s *Server) EditAcronymGetHandler() http.HandlerFunc {
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
		tags, err := s.repos.Pivot.CategoriesFor(r.Context(), acronym.ID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		token, err := s.services.CSRF.Mint(sessionKey(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		s.renderPage(w, "editAcronym.html", map[string]any{
			"AppName":    s.config.GetAppName(),
			"User":       currentUser(r),
			"Acronym":    acronym,
			"Categories": tags,
			"CSRFToken":  token,
		})
	}
}

// EditAcronymPostHandler updates the acronym, reassigns it to the editing
// identity and reconciles its tags against the submitted set.
func (s *Server) EditAcronymPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "acronymID")
		if err != nil {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		if err := s.services.CSRF.Validate(sessionKey(r), r.PostFormValue("csrfToken")); err != nil {
			http.Error(w, "invalid form token", http.StatusBadRequest)
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
		acronym.Short = r.PostFormValue("short")
		acronym.Long = r.PostFormValue("long")
		acronym.UserID = currentUser(r).ID
		if err := s.repos.Acronyms.Update(r.Context(), acronym); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if err := s.services.Sync.Sync(r.Context(), acronym.ID, formCategories(r)); err != nil {
			s.log.Error().Err(err).Int64("acronym_id", acronym.ID).Msg("category sync failed")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, acronymPagePath(acronym.ID), http.StatusSeeOther)
	}
}

// DeleteAcronymHandler removes the acronym and sends the browser home.
func (s *Server) DeleteAcronymHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "acronymID")
		if err != nil {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		if err := s.repos.Acronyms.Delete(r.Context(), id); err != nil {
			if errors.Is(err, acronyms.ErrNotFound) {
				http.Error(w, "404 - Page Not Found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, RouteIndex, http.StatusSeeOther)
	}
}

// formCategories pulls the submitted tag names, dropping blank inputs. Names
// are passed through verbatim, no trimming or case folding.
func formCategories(r *http.Request) []string {
	var names []string
	for _, name := range r.PostForm["categories"] {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
