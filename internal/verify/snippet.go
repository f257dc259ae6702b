package verify

import (
	"strings"

	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/textutil"
)

const (
	// snippetPad is the context kept on each side of an exact occurrence.
	snippetPad = 50
	// snippetKeywordWindow extends past a matched keyword when no exact
	// occurrence exists.
	snippetKeywordWindow = 150
	// snippetKeywordMinLen is the token length floor for fallback keywords.
	snippetKeywordMinLen = 4
	// snippetMaxKeywords bounds how many fallback keywords are tried.
	snippetMaxKeywords = 3
	// snippetFallbackLen is the head-of-document fallback size.
	snippetFallbackLen = 150
)

// ExtractSnippet returns a human-checkable window of document text around
// the citation match. Preference order: a window centered on the first
// exact normalized occurrence, then a window after the first matching
// keyword, then the head of the document. The result is non-empty whenever
// the document has content.
func ExtractSnippet(docText, citationText string) string {
	doc := textutil.Normalize(docText)
	citation := textutil.Normalize(citationText)

	if citation != "" {
		if idx := strings.Index(doc, citation); idx >= 0 {
			start := max(0, idx-snippetPad)
			end := min(len(doc), idx+len(citation)+snippetPad)
			return strings.TrimSpace(doc[start:end])
		}
	}

	keywords := textutil.Keywords(citationText, snippetKeywordMinLen)
	if len(keywords) > snippetMaxKeywords {
		keywords = keywords[:snippetMaxKeywords]
	}
	for _, keyword := range keywords {
		idx := strings.Index(doc, keyword)
		if idx < 0 {
			continue
		}
		start := max(0, idx-snippetPad)
		end := min(len(doc), idx+snippetKeywordWindow)
		return strings.TrimSpace(doc[start:end])
	}

	end := min(len(doc), snippetFallbackLen)
	return strings.TrimSpace(doc[:end])
}
