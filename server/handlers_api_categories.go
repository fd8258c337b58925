package server

import "net/http"

type categoryRequest struct {
	Name string `json:"name"`
}

// APIListCategoriesHandler lists every category.
func (s *Server) APIListCategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := s.repos.Categories.List(r.Context())
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, all)
	}
}

// APICreateCategoryHandler creates the named category, or returns the
// existing one when the name is already taken.
func (s *Server) APICreateCategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req categoryRequest
		if err := decodeJSON(r, &req); err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.Name == "" {
			writeJSONError(w, http.StatusBadRequest, "name is required")
			return
		}
		category, err := s.repos.Categories.FindOrCreate(r.Context(), req.Name)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusCreated, category)
	}
}

// APIGetCategoryHandler returns one category.
func (s *Server) APIGetCategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, ok := s.loadCategory(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, category)
	}
}

// APICategoryAcronymsHandler lists the acronyms filed under a category.
func (s *Server) APICategoryAcronymsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, ok := s.loadCategory(w, r)
		if !ok {
			return
		}
		tagged, err := s.repos.Pivot.AcronymsFor(r.Context(), category.ID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, tagged)
	}
}
