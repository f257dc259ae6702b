package fetch

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MinContentLength is the floor below which an extracted container is
// considered navigation chrome rather than real content.
const MinContentLength = 100

// Extractor reduces rendered HTML to plain text. It is a replaceable
// strategy: the browser fetcher only depends on this capability, not on
// any particular selector logic.
type Extractor interface {
	Extract(html string) (string, error)
}

// ContainerExtractor walks an ordered list of likely content containers and
// returns the text of the first one that clears MinLength. This avoids
// returning near-empty navigation chrome when a real content region exists.
type ContainerExtractor struct {
	Selectors []string
	MinLength int
}

// DefaultExtractor returns the standard container preference order.
func DefaultExtractor() *ContainerExtractor {
	return &ContainerExtractor{
		Selectors: []string{"article", "main", ".content", "#content", "body"},
		MinLength: MinContentLength,
	}
}

// Extract parses html and returns the text of the first container whose
// cleaned text exceeds MinLength. If no container clears the floor, the
// body text is returned as-is so a non-empty page never extracts to "".
func (e *ContainerExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	// Remove elements that never carry article text.
	doc.Find("script, style, noscript, nav, footer, header, .ad, .advertisement, .sidebar, .cookie-banner").Remove()

	var fallback string
	for _, selector := range e.Selectors {
		selection := doc.Find(selector)
		if selection.Length() == 0 {
			continue
		}
		text := cleanWhitespace(selection.First().Text())
		if len(text) > e.MinLength {
			return text, nil
		}
		if fallback == "" {
			fallback = text
		}
	}

	if fallback == "" {
		fallback = cleanWhitespace(doc.Find("body").Text())
	}
	return fallback, nil
}

// cleanWhitespace trims each line and drops empty ones, preserving line
// structure so the matcher can later split the page into fragments.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			// Collapse runs of blank lines to a single separator.
			if !blank && len(cleaned) > 0 {
				cleaned = append(cleaned, "")
			}
			blank = true
			continue
		}
		blank = false
		cleaned = append(cleaned, line)
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
