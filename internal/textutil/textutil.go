// Package textutil provides text normalization and tokenization used by the
// citation matcher. All functions are pure and safe for concurrent use.
package textutil

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// Word tokens may contain internal apostrophes and hyphens so that
	// "don't" and "well-known" stay single tokens. The boundary anchors
	// keep surrounding quote and dash characters out of the token, so
	// 'landmark' tokenizes to landmark.
	tokenRe = regexp.MustCompile(`\b[\w'-]+\b`)
)

// Normalize lower-cases text, collapses whitespace runs to single spaces,
// and trims the ends. Two texts that differ only in casing or spacing
// normalize to the same string.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize returns the lower-cased word tokens of text in order of
// appearance. Returns nil for text with no word characters.
func Tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// Keywords returns the distinct tokens of text strictly longer than minLen,
// in first-seen order. Filtering by length removes most function words
// without a fixed stop-list, at the cost of dropping legitimately short
// keywords.
func Keywords(text string, minLen int) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, token := range Tokenize(text) {
		if len(token) <= minLen || seen[token] {
			continue
		}
		seen[token] = true
		keywords = append(keywords, token)
	}
	return keywords
}

// TokenSet builds a membership set of the tokens in text. Frequency is
// deliberately not tracked; the matcher only needs presence.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range Tokenize(text) {
		set[token] = true
	}
	return set
}
