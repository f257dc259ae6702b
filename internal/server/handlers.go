package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/advisory"
	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/catalog"
	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/fetch"
)

// User-facing result messages.
const (
	msgVerified = "Citation verified in source."
	msgNotFound = "No matching content found for the provided citation in the given URL."
)

// VerifyRequest is the request body for POST /verify. The citation floor
// keeps trivially short inputs from producing meaningless keyword sets.
type VerifyRequest struct {
	CitationText   string `json:"citation_text" validate:"required,min=10"`
	SourceURL      string `json:"source_url" validate:"required,url"`
	EnableAnalysis bool   `json:"enable_analysis"`
}

// VerifyResponse is the response body for POST /verify.
type VerifyResponse struct {
	RequestID       string                    `json:"request_id"`
	MatchedSources  []string                  `json:"matched_sources"`
	ContextSnippets []string                  `json:"context_snippets"`
	OfficialSources []*catalog.OfficialSource `json:"official_sources,omitempty"`
	Message         string                    `json:"message"`
	Analysis        *advisory.Analysis        `json:"analysis,omitempty"`
	AnalysisError   string                    `json:"analysis_error,omitempty"`
}

// handleVerify runs citation verification and, optionally, advisory
// analysis of the outcome.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			s.failResponse(w, &ErrInvalidRequest{Message: validationMessage(fieldErrs[0])})
			return
		}
		s.failResponse(w, &ErrInvalidRequest{Message: "request failed validation."})
		return
	}

	result, err := s.verifier.Verify(r.Context(), req.CitationText, req.SourceURL)
	if err != nil {
		var fetchErr *fetch.Error
		if errors.As(err, &fetchErr) {
			s.failResponse(w, &ErrSourceUnreachable{URL: req.SourceURL})
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "An unexpected error occurred while verifying the citation.")
		return
	}

	resp := &VerifyResponse{
		RequestID:       uuid.New().String(),
		MatchedSources:  result.MatchedSources,
		ContextSnippets: result.Snippets,
		Message:         msgNotFound,
	}
	if result.Found() {
		resp.Message = msgVerified
		for _, source := range result.MatchedSources {
			if official := catalog.LookupOfficial(source); official != nil {
				resp.OfficialSources = append(resp.OfficialSources, official)
			}
		}
	}

	if req.EnableAnalysis {
		resp.Analysis, resp.AnalysisError = s.analyze(r, req, result.MatchedSources, result.Snippets)
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// analyze returns advisory commentary for the result. The fallback is
// always available, so a failed or unconfigured model degrades to it with
// a non-fatal note rather than affecting the verification result.
func (s *Server) analyze(r *http.Request, req VerifyRequest, matched, snippets []string) (*advisory.Analysis, string) {
	if s.analyzer == nil {
		return advisory.FallbackAnalysis(len(matched) > 0),
			"AI analysis is not configured. This does not affect verification results."
	}

	analysis, err := s.analyzer.Analyze(r.Context(), req.CitationText, req.SourceURL, matched, snippets)
	if err != nil {
		if analysis == nil {
			analysis = advisory.FallbackAnalysis(len(matched) > 0)
		}
		return analysis, "AI analysis unavailable. This does not affect verification results."
	}
	return analysis, ""
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "CitationText":
		return "Please enter more text to verify."
	case "SourceURL":
		return "Please enter a valid URL."
	default:
		return fe.Field() + " is invalid."
	}
}
