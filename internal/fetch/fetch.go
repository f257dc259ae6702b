// Package fetch retrieves the visible text content of web pages through a
// headless browser. Only extracted text is retained; markup, media, and DOM
// state are discarded.
package fetch

import (
	"fmt"
	"time"
)

// Default timeouts for the two independent phases of a fetch. Browser
// startup and page load are measured separately; either expiring fails
// the call.
const (
	DefaultStartupTimeout = 10 * time.Second
	DefaultLoadTimeout    = 15 * time.Second
)

// Document is the plain-text extraction of a fetched web page. Immutable
// once created.
type Document struct {
	Content   string    `json:"content"`
	SourceURL string    `json:"source_url"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Error represents a failure to retrieve a page.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
