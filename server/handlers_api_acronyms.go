package server

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/tilhub/acronyms/acronyms"
	"github.com/tilhub/acronyms/categories"
)

type acronymRequest struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

func (req acronymRequest) validate() string {
	if req.Short == "" {
		return "short is required"
	}
	if req.Long == "" {
		return "long is required"
	}
	return ""
}

// APIListAcronymsHandler lists every acronym.
func (s *Server) APIListAcronymsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := s.repos.Acronyms.List(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, all)
	}
}

// APICreateAcronymHandler creates an acronym owned by the token's identity.
func (s *Server) APICreateAcronymHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req acronymRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if reason := req.validate(); reason != "" {
			writeJSONError(w, http.StatusBadRequest, reason)
			return
		}

		acronym := &acronyms.Acronym{Short: req.Short, Long: req.Long, UserID: currentUser(r).ID}
		if err := s.repos.Acronyms.Create(r.Context(), acronym); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusCreated, acronym)
	}
}

// APISearchAcronymsHandler matches the term exactly against the short or the
// long form. A missing term is a client error, not an empty result.
func (s *Server) APISearchAcronymsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("term")
		if term == "" {
			writeJSONError(w, http.StatusBadRequest, "term is required")
			return
		}
		matches, err := s.repos.Acronyms.Search(r.Context(), term)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

// APIFirstAcronymHandler returns the oldest acronym.
func (s *Server) APIFirstAcronymHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		first, err := s.repos.Acronyms.First(r.Context())
		if err != nil {
			if errors.Is(err, acronyms.ErrNotFound) {
				writeJSONError(w, http.StatusNotFound, "not found")
				return
			}
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, first)
	}
}

// APISortedAcronymsHandler lists every acronym ordered by its short form.
func (s *Server) APISortedAcronymsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sorted, err := s.repos.Acronyms.SortedByShort(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, sorted)
	}
}

// APIGetAcronymHandler returns one acronym.
func (s *Server) APIGetAcronymHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acronym, ok := s.loadAcronym(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, acronym)
	}
}

// APIUpdateAcronymHandler replaces the acronym's fields and reassigns it to
// the token's identity.
func (s *Server) APIUpdateAcronymHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acronym, ok := s.loadAcronym(w, r)
		if !ok {
			return
		}
		var req acronymRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if reason := req.validate(); reason != "" {
			writeJSONError(w, http.StatusBadRequest, reason)
			return
		}

		acronym.Short = req.Short
		acronym.Long = req.Long
		acronym.UserID = currentUser(r).ID
		if err := s.repos.Acronyms.Update(r.Context(), acronym); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, acronym)
	}
}

// APIDeleteAcronymHandler removes the acronym.
func (s *Server) APIDeleteAcronymHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acronym, ok := s.loadAcronym(w, r)
		if !ok {
			return
		}
		if err := s.repos.Acronyms.Delete(r.Context(), acronym.ID); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// APIAcronymUserHandler returns the public projection of the acronym's owner.
func (s *Server) APIAcronymUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acronym, ok := s.loadAcronym(w, r)
		if !ok {
			return
		}
		owner, err := s.repos.Users.GetByID(r.Context(), acronym.UserID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, owner.Public())
	}
}

// APIAcronymCategoriesHandler lists the acronym's tags.
func (s *Server) APIAcronymCategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acronym, ok := s.loadAcronym(w, r)
		if !ok {
			return
		}
		tags, err := s.repos.Pivot.CategoriesFor(r.Context(), acronym.ID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, tags)
	}
}

// APIAttachCategoryHandler files the acronym under the category. Attaching an
// already attached pair succeeds without creating a second row.
func (s *Server) APIAttachCategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acronym, ok := s.loadAcronym(w, r)
		if !ok {
			return
		}
		category, ok := s.loadCategory(w, r)
		if !ok {
			return
		}
		if err := s.repos.Pivot.Attach(r.Context(), acronym.ID, category.ID); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

// APIDetachCategoryHandler removes the acronym from the category. Detaching a
// pair that is not attached succeeds and changes nothing.
func (s *Server) APIDetachCategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		acronym, ok := s.loadAcronym(w, r)
		if !ok {
			return
		}
		category, ok := s.loadCategory(w, r)
		if !ok {
			return
		}
		if err := s.repos.Pivot.Detach(r.Context(), acronym.ID, category.ID); err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// loadAcronym resolves the {acronymID} path segment, writing the error
// response itself when the acronym cannot be served.
func (s *Server) loadAcronym(w http.ResponseWriter, r *http.Request) (*acronyms.Acronym, bool) {
	id, err := pathID(r, "acronymID")
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "not found")
		return nil, false
	}
	acronym, err := s.repos.Acronyms.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, acronyms.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not found")
			return nil, false
		}
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return nil, false
	}
	return acronym, true
}

// loadCategory resolves the {categoryID} path segment the same way.
func (s *Server) loadCategory(w http.ResponseWriter, r *http.Request) (*categories.Category, bool) {
	id, err := pathID(r, "categoryID")
	if err != nil {
		writeJSONError(w, http.StatusNotFound, "not found")
		return nil, false
	}
	category, err := s.repos.Categories.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, categories.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "not found")
			return nil, false
		}
		writeJSONError(w, http.StatusInternalServerError, "internal error")
		return nil, false
	}
	return category, true
}
