package fetch

import (
	"context"
	"log"
	"net/url"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// blockedResourcePatterns are refused at the network layer to cut fetch
// latency. Blocking is a performance policy only; pages still render text
// without these subresources.
var blockedResourcePatterns = []string{
	"*.png", "*.jpg", "*.jpeg", "*.gif", "*.webp", "*.svg", "*.ico",
	"*.woff", "*.woff2", "*.ttf", "*.otf",
	"*.mp4", "*.webm", "*.mp3", "*.ogg",
}

// BrowserFetcher fetches pages through headless Chrome so that
// script-rendered content is visible to text extraction. Requires
// Chrome/Chromium on the system.
type BrowserFetcher struct {
	startupTimeout time.Duration
	loadTimeout    time.Duration
	extractor      Extractor
	verbose        bool
	now            func() time.Time
}

// BrowserFetcherConfig holds configuration for the browser fetcher.
// Zero values use defaults.
type BrowserFetcherConfig struct {
	StartupTimeout time.Duration
	LoadTimeout    time.Duration
	Extractor      Extractor
	Verbose        bool
}

// NewBrowserFetcher creates a fetcher with the given configuration.
func NewBrowserFetcher(cfg *BrowserFetcherConfig) *BrowserFetcher {
	if cfg == nil {
		cfg = &BrowserFetcherConfig{}
	}
	f := &BrowserFetcher{
		startupTimeout: cfg.StartupTimeout,
		loadTimeout:    cfg.LoadTimeout,
		extractor:      cfg.Extractor,
		verbose:        cfg.Verbose,
		now:            time.Now,
	}
	if f.startupTimeout == 0 {
		f.startupTimeout = DefaultStartupTimeout
	}
	if f.loadTimeout == 0 {
		f.loadTimeout = DefaultLoadTimeout
	}
	if f.extractor == nil {
		f.extractor = DefaultExtractor()
	}
	return f
}

// Fetch renders urlStr in a headless browser and returns its extracted
// text as a Document. Browser startup and page load are bounded by
// independent timeouts; either expiring fails the call.
func (f *BrowserFetcher) Fetch(ctx context.Context, urlStr string) (*Document, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	if f.verbose {
		log.Printf("[BROWSER] fetching %s", urlStr)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// Phase 1: start the browser process under its own deadline. Running
	// with no actions forces allocation without touching the target page.
	startCtx, cancelStart := context.WithTimeout(browserCtx, f.startupTimeout)
	defer cancelStart()
	if err := chromedp.Run(startCtx); err != nil {
		return nil, &Error{URL: urlStr, Message: "browser startup failed", Cause: err}
	}

	// Phase 2: navigate and render under the load deadline.
	loadCtx, cancelLoad := context.WithTimeout(browserCtx, f.loadTimeout)
	defer cancelLoad()

	var html string
	err = chromedp.Run(loadCtx,
		network.Enable(),
		network.SetBlockedURLs(blockedResourcePatterns),
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "could not access URL", Cause: err}
	}

	text, err := f.extractor.Extract(html)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "text extraction failed", Cause: err}
	}

	if f.verbose {
		log.Printf("[BROWSER] extracted %d chars from %s", len(text), urlStr)
	}

	return &Document{
		Content:   text,
		SourceURL: urlStr,
		FetchedAt: f.now(),
	}, nil
}
