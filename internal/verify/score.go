// Package verify implements the citation verification engine: scoring a
// citation against fetched document text, extracting context snippets, and
// orchestrating fetch, match, and result aggregation.
package verify

import (
	"strings"

	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/textutil"
)

// MatchThreshold is the minimum keyword-coverage score for acceptance.
// Deliberately permissive: citations are frequently paraphrased or lightly
// edited relative to source prose, so recall is favored over precision.
const MatchThreshold = 0.4

// scoringKeywordMinLen filters citation tokens when building the keyword
// set: only tokens strictly longer than this participate in scoring.
const scoringKeywordMinLen = 3

// containsNormalized reports whether the normalized document contains the
// normalized citation as a contiguous substring. This is the common case
// for verbatim quotes and makes the match certain.
func containsNormalized(docText, citationText string) bool {
	citation := textutil.Normalize(citationText)
	if citation == "" {
		return false
	}
	return strings.Contains(textutil.Normalize(docText), citation)
}

// Score computes a similarity score in [0,1] between a document and a
// citation. A normalized substring hit scores 1.0; otherwise the score is
// the fraction of distinct citation keywords present anywhere in the
// document, irrespective of order or adjacency. A citation with no
// keywords scores 0.
func Score(docText, citationText string) float64 {
	if containsNormalized(docText, citationText) {
		return 1.0
	}

	keywords := textutil.Keywords(citationText, scoringKeywordMinLen)
	if len(keywords) == 0 {
		return 0
	}

	docTokens := textutil.TokenSet(docText)
	hits := 0
	for _, keyword := range keywords {
		if docTokens[keyword] {
			hits++
		}
	}
	return float64(hits) / float64(len(keywords))
}

// Matches reports whether the citation plausibly appears in the document:
// either a direct normalized substring hit or keyword coverage at or above
// MatchThreshold.
func Matches(docText, citationText string) bool {
	if containsNormalized(docText, citationText) {
		return true
	}
	return Score(docText, citationText) >= MatchThreshold
}
