package server

import (
	"net/http"
	"strings"

	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/catalog"
)

// candidateCatalogRequired guards catalog endpoints when no database is
// configured; the verification engine never needs one.
func (s *Server) candidateCatalogRequired(w http.ResponseWriter) bool {
	if s.catalog == nil {
		s.failResponse(w, &ErrCatalogUnavailable{})
		return false
	}
	return true
}

func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	if !s.candidateCatalogRequired(w) {
		return
	}

	candidates, err := s.catalog.List(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list candidates.")
		return
	}
	if candidates == nil {
		candidates = []*catalog.Candidate{}
	}
	s.jsonResponse(w, http.StatusOK, candidates)
}

func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	if !s.candidateCatalogRequired(w) {
		return
	}

	id := r.PathValue("id")
	candidate, err := s.catalog.Get(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get candidate.")
		return
	}
	if candidate == nil {
		s.failResponse(w, &ErrCandidateNotFound{ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, candidate)
}

func (s *Server) handleSearchCandidates(w http.ResponseWriter, r *http.Request) {
	if !s.candidateCatalogRequired(w) {
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		s.failResponse(w, &ErrInvalidRequest{Message: "query parameter 'q' is required."})
		return
	}

	candidates, err := s.catalog.Search(r.Context(), query)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to search candidates.")
		return
	}
	if candidates == nil {
		candidates = []*catalog.Candidate{}
	}
	s.jsonResponse(w, http.StatusOK, candidates)
}
