package verify

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/fetch"
)

// batchConcurrency bounds parallel fetches in VerifyBatch.
const batchConcurrency = 4

// Fetcher retrieves the text content of a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*fetch.Document, error)
}

// Cache is the document cache consulted before fetching. Implementations
// must treat every fault as a miss or a dropped write.
type Cache interface {
	Get(url string) (*fetch.Document, bool)
	Put(url string, doc *fetch.Document)
}

// Result is the outcome of verifying one citation against one source.
// MatchedSources is duplicate-free in first-seen (ranked) order and
// Snippets is index-aligned with it. Both are empty, never nil, when no
// match is found; that is a normal outcome, not an error.
type Result struct {
	MatchedSources []string `json:"matched_sources"`
	Snippets       []string `json:"context_snippets"`
}

// Found reports whether any source matched.
func (r *Result) Found() bool {
	return len(r.MatchedSources) > 0
}

// Verifier composes the fetcher, cache, and matcher into the public
// verification operation. The cache/fetcher pair is dependency-injected
// and owned by the caller for the process lifetime.
type Verifier struct {
	fetcher Fetcher
	cache   Cache
	verbose bool
}

// NewVerifier creates a verifier. cache may be nil to disable caching.
func NewVerifier(fetcher Fetcher, cache Cache, verbose bool) *Verifier {
	return &Verifier{fetcher: fetcher, cache: cache, verbose: verbose}
}

// Verify determines whether citationText plausibly appears in the page at
// sourceURL. "Not found" is the empty Result; only an unreachable URL is
// an error.
func (v *Verifier) Verify(ctx context.Context, citationText, sourceURL string) (*Result, error) {
	if citationText == "" {
		return nil, fmt.Errorf("citation text is required")
	}
	if sourceURL == "" {
		return nil, fmt.Errorf("source URL is required")
	}

	doc, err := v.document(ctx, sourceURL)
	if err != nil {
		return nil, err
	}

	candidates := v.candidates(doc.Content, citationText)

	result := &Result{MatchedSources: []string{}, Snippets: []string{}}
	seen := make(map[string]bool)
	for _, candidate := range candidates {
		if !Matches(candidate, citationText) {
			continue
		}
		// Candidates carry no finer provenance than the page itself.
		source := doc.SourceURL
		if source == "" {
			source = sourceURL
		}
		if seen[source] {
			// First accepted candidate per source wins; candidates are in
			// ranked order so the higher-scoring snippet is kept.
			continue
		}
		seen[source] = true
		result.MatchedSources = append(result.MatchedSources, source)
		result.Snippets = append(result.Snippets, ExtractSnippet(candidate, citationText))
	}

	if v.verbose {
		log.Printf("[VERIFY] %d matching source(s) for %s", len(result.MatchedSources), sourceURL)
	}
	return result, nil
}

// document returns the page text for url, cache-checked first. A fresh
// fetch is offered to the cache without blocking result delivery.
func (v *Verifier) document(ctx context.Context, url string) (*fetch.Document, error) {
	if v.cache != nil {
		if doc, ok := v.cache.Get(url); ok {
			return doc, nil
		}
	}

	doc, err := v.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("could not access the URL: %w", err)
	}

	if v.cache != nil {
		go v.cache.Put(url, doc)
	}
	return doc, nil
}

// candidates subdivides the page and ranks up to maxCandidates fragments.
// The whole page is appended as a final candidate when the page was
// subdivided, so a citation spanning a fragment boundary is still found.
func (v *Verifier) candidates(content, citationText string) []string {
	fragments := splitFragments(content)
	ranked := rankFragments(fragments, citationText)
	if len(fragments) > 1 {
		ranked = append(ranked, content)
	}
	if len(ranked) == 0 && content != "" {
		ranked = []string{content}
	}
	return ranked
}

// VerifyBatch verifies one citation against several URLs concurrently.
// Results and errors are positional; a failed URL leaves a nil Result and
// its error at the same index, and does not abort the other fetches.
func (v *Verifier) VerifyBatch(ctx context.Context, citationText string, urls []string) ([]*Result, []error) {
	results := make([]*Result, len(urls))
	errs := make([]error, len(urls))

	var g errgroup.Group
	g.SetLimit(batchConcurrency)
	for i, url := range urls {
		g.Go(func() error {
			results[i], errs[i] = v.Verify(ctx, citationText, url)
			return nil
		})
	}
	_ = g.Wait()

	return results, errs
}
