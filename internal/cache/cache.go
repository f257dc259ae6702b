// Package cache provides a file-backed, time-bounded store of fetched
// documents keyed by a content-address of the URL. Caching is strictly a
// performance optimization: every fault degrades to a miss or a dropped
// write, never an error for the caller.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/fetch"
)

// DefaultTTL is how long a cached document stays valid, measured from
// write time. There is no sliding expiration.
const DefaultTTL = 7 * 24 * time.Hour

// record is the persisted shape: one JSON file per URL hash.
type record struct {
	URL       string          `json:"url"`
	CachedAt  time.Time       `json:"cached_at"`
	Documents []storedDocument `json:"documents"`
}

type storedDocument struct {
	Content  string           `json:"content"`
	Metadata documentMetadata `json:"metadata"`
}

type documentMetadata struct {
	SourceURL string    `json:"source_url"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Store is a content-addressed document cache on local storage.
// Concurrent use on different keys is safe; same-key writes are
// last-write-wins because each record is written atomically as a whole.
type Store struct {
	dir     string
	ttl     time.Duration
	verbose bool
	now     func() time.Time
}

// Config holds cache configuration. Zero values use defaults.
type Config struct {
	Dir     string
	TTL     time.Duration
	Verbose bool
}

// New creates a cache store rooted at cfg.Dir, creating the directory if
// needed. A directory creation failure is returned because a store that
// can never persist is a configuration error, not a transient fault.
func New(cfg *Config) (*Store, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	dir := cfg.Dir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "alamin-cache")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Store{dir: dir, ttl: ttl, verbose: cfg.Verbose, now: time.Now}, nil
}

// Get returns the cached document for url, or ok=false on a miss. Stale
// and corrupt records are removed lazily here; both count as misses.
func (s *Store) Get(url string) (*fetch.Document, bool) {
	path := s.path(url)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		// Corrupt or partially-written record: treat as absent.
		_ = os.Remove(path)
		return nil, false
	}

	if s.now().Sub(rec.CachedAt) > s.ttl {
		if s.verbose {
			log.Printf("[CACHE] expired entry for %s", url)
		}
		_ = os.Remove(path)
		return nil, false
	}

	if len(rec.Documents) == 0 {
		return nil, false
	}

	stored := rec.Documents[0]
	if s.verbose {
		log.Printf("[CACHE] hit for %s", url)
	}
	return &fetch.Document{
		Content:   stored.Content,
		SourceURL: stored.Metadata.SourceURL,
		FetchedAt: stored.Metadata.FetchedAt,
	}, true
}

// Put stores doc under url. Write failures are swallowed: the fetch
// already succeeded and the cache must never block or fail the caller.
// The record is written to a temp file and renamed so readers never
// observe a torn entry.
func (s *Store) Put(url string, doc *fetch.Document) {
	if doc == nil {
		return
	}
	rec := record{
		URL:      url,
		CachedAt: s.now(),
		Documents: []storedDocument{{
			Content: doc.Content,
			Metadata: documentMetadata{
				SourceURL: doc.SourceURL,
				FetchedAt: doc.FetchedAt,
			},
		}},
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return
	}

	tmp, err := os.CreateTemp(s.dir, "put-*")
	if err != nil {
		if s.verbose {
			log.Printf("[CACHE] dropped write for %s: %v", url, err)
		}
		return
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return
	}
	if err := os.Rename(tmp.Name(), s.path(url)); err != nil {
		_ = os.Remove(tmp.Name())
		if s.verbose {
			log.Printf("[CACHE] dropped write for %s: %v", url, err)
		}
	}
}

// Invalidate removes the entry for url, forcing a re-fetch on next use.
func (s *Store) Invalidate(url string) {
	_ = os.Remove(s.path(url))
}

// path derives the backing file from a deterministic hash of the URL
// string, so lookups are idempotent and independent of page content.
func (s *Store) path(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:])+".json")
}
