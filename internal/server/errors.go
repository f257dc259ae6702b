package server

import (
	"fmt"
	"net/http"
)

// ErrInvalidRequest indicates a malformed or failed-validation request
type ErrInvalidRequest struct {
	Message string
}

func (e *ErrInvalidRequest) Error() string {
	return "Invalid input: " + e.Message
}

// ErrSourceUnreachable indicates the source page could not be fetched
type ErrSourceUnreachable struct {
	URL string
}

func (e *ErrSourceUnreachable) Error() string {
	return "Could not access the URL. Check that the address is correct and the page is reachable."
}

// ErrCandidateNotFound indicates no catalog entry for the requested id
type ErrCandidateNotFound struct {
	ID string
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("Candidate not found: %s", e.ID)
}

// ErrCatalogUnavailable indicates no candidate database is configured
type ErrCatalogUnavailable struct{}

func (e *ErrCatalogUnavailable) Error() string {
	return "Candidate catalog is not configured."
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrInvalidRequest:
		return http.StatusBadRequest
	case *ErrSourceUnreachable:
		return http.StatusBadGateway
	case *ErrCandidateNotFound:
		return http.StatusNotFound
	case *ErrCatalogUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
