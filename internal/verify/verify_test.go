package verify

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/fetch"
)

type stubFetcher struct {
	mu    sync.Mutex
	docs  map[string]*fetch.Document
	err   error
	calls int
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (*fetch.Document, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	doc, ok := f.docs[url]
	if !ok {
		return nil, &fetch.Error{URL: url, Message: "could not access URL"}
	}
	return doc, nil
}

func (f *stubFetcher) fetchCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// memCache guards its map because the verifier writes from a goroutine.
type memCache struct {
	mu      sync.Mutex
	entries map[string]*fetch.Document
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]*fetch.Document)}
}

func (c *memCache) Get(url string) (*fetch.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.entries[url]
	return doc, ok
}

func (c *memCache) Put(url string, doc *fetch.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[url] = doc
}

func doc(url, content string) *fetch.Document {
	return &fetch.Document{Content: content, SourceURL: url, FetchedAt: time.Now()}
}

func TestVerify_ExactSubstringInCachedDocument(t *testing.T) {
	url := "https://news.example.com/article"
	citation := "the ombudsman cleared him of all charges in 2015 due to lack of evidence"

	content := "Background paragraph about the fund allegations from 2013.\n\n" +
		"After a two-year review, The Ombudsman cleared him of all charges in 2015 due to lack of evidence, ending the case.\n\n" +
		"Reactions from both camps followed within the week."

	cache := newMemCache()
	cache.Put(url, doc(url, content))
	fetcher := &stubFetcher{}
	v := NewVerifier(fetcher, cache, false)

	result, err := v.Verify(context.Background(), citation, url)
	require.NoError(t, err)
	assert.Equal(t, 0, fetcher.fetchCalls(), "cached document must not trigger a fetch")
	require.Equal(t, []string{url}, result.MatchedSources)
	require.Len(t, result.Snippets, 1)
	assert.Contains(t, result.Snippets[0], citation)
}

func TestVerify_KeywordOverlapAccepted(t *testing.T) {
	url := "https://news.example.com/platform"
	// 4 keywords: modernization, raises, farmer, incomes; page has
	// modernization and incomes but no verbatim phrase: score 0.5.
	citation := "modernization raises farmer incomes"
	content := "The platform promises agricultural modernization and better incomes for rural families."

	v := NewVerifier(&stubFetcher{docs: map[string]*fetch.Document{url: doc(url, content)}}, nil, false)

	result, err := v.Verify(context.Background(), citation, url)
	require.NoError(t, err)
	require.True(t, result.Found())
	assert.Contains(t, result.Snippets[0], "modernization")
}

func TestVerify_BelowThresholdIsEmptyResultNotError(t *testing.T) {
	url := "https://news.example.com/other"
	// 5 keywords, only one present: 0.2 < 0.4.
	citation := "healthcare insurance expansion coverage checkups"
	content := "An unrelated story that briefly mentions healthcare once."

	v := NewVerifier(&stubFetcher{docs: map[string]*fetch.Document{url: doc(url, content)}}, nil, false)

	result, err := v.Verify(context.Background(), citation, url)
	require.NoError(t, err)
	assert.False(t, result.Found())
	assert.Empty(t, result.MatchedSources)
	assert.Empty(t, result.Snippets)
	assert.NotNil(t, result.MatchedSources, "empty result must marshal as [], not null")
}

func TestVerify_FetchFailureSurfacedAsError(t *testing.T) {
	fetchErr := &fetch.Error{URL: "https://down.example.com", Message: "could not access URL", Cause: context.DeadlineExceeded}
	v := NewVerifier(&stubFetcher{err: fetchErr}, nil, false)

	result, err := v.Verify(context.Background(), "any citation text here", "https://down.example.com")
	require.Error(t, err)
	assert.Nil(t, result, "no partial result on fetch failure")
	assert.Contains(t, err.Error(), "could not access")

	var fe *fetch.Error
	assert.True(t, errors.As(err, &fe))
}

func TestVerify_DeduplicatesBySourceKeepingFirstRanked(t *testing.T) {
	url := "https://news.example.com/long"
	citation := "senator authored reform legislation"
	strong := "The senator authored the reform legislation himself. " + strings.Repeat("More detail. ", 20)
	weak := "Observers called the reform modest. " + strings.Repeat("Other notes. ", 20)
	content := weak + "\n\n" + strong

	v := NewVerifier(&stubFetcher{docs: map[string]*fetch.Document{url: doc(url, content)}}, nil, false)

	result, err := v.Verify(context.Background(), citation, url)
	require.NoError(t, err)
	require.Equal(t, []string{url}, result.MatchedSources, "one entry per source URL")
	require.Len(t, result.Snippets, 1)
	assert.Contains(t, result.Snippets[0], "authored", "snippet must come from the higher-ranked fragment")
}

func TestVerify_CitationSpanningFragmentBoundary(t *testing.T) {
	url := "https://news.example.com/split"
	first := strings.Repeat("Opening section prose. ", 10) + "The committee approved the measure"
	second := "after extensive deliberation that same evening. " + strings.Repeat("Closing prose. ", 10)
	content := first + "\n\n" + second
	citation := "the measure after extensive deliberation"

	v := NewVerifier(&stubFetcher{docs: map[string]*fetch.Document{url: doc(url, content)}}, nil, false)

	result, err := v.Verify(context.Background(), citation, url)
	require.NoError(t, err)
	assert.True(t, result.Found(), "whole-page candidate covers boundary-spanning quotes")
}

func TestVerify_FreshFetchIsOfferedToCache(t *testing.T) {
	url := "https://news.example.com/fresh"
	content := "The senator authored the reform legislation in committee."
	cache := newMemCache()
	v := NewVerifier(&stubFetcher{docs: map[string]*fetch.Document{url: doc(url, content)}}, cache, false)

	_, err := v.Verify(context.Background(), "senator authored reform legislation", url)
	require.NoError(t, err)

	// The put is fire-and-forget; allow it to land.
	assert.Eventually(t, func() bool {
		_, ok := cache.Get(url)
		return ok
	}, time.Second, 10*time.Millisecond)
}

func TestVerify_InputValidation(t *testing.T) {
	v := NewVerifier(&stubFetcher{}, nil, false)

	_, err := v.Verify(context.Background(), "", "https://example.com")
	assert.Error(t, err)

	_, err = v.Verify(context.Background(), "citation text", "")
	assert.Error(t, err)
}

func TestVerifyBatch_PositionalResults(t *testing.T) {
	good := "https://news.example.com/good"
	bad := "https://news.example.com/bad"
	content := "The senator authored the reform legislation in committee."

	v := NewVerifier(&stubFetcher{docs: map[string]*fetch.Document{good: doc(good, content)}}, nil, false)

	results, errs := v.VerifyBatch(context.Background(), "senator authored reform legislation", []string{good, bad})
	require.Len(t, results, 2)
	require.Len(t, errs, 2)

	require.NoError(t, errs[0])
	assert.True(t, results[0].Found())

	assert.Error(t, errs[1])
	assert.Nil(t, results[1])
}
