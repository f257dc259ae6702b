package main

import (
	"fmt"

	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/cache"
	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/config"
	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/fetch"
	"github.com/GH-MarkAnthonyManzon/alamin-natin/internal/verify"
)

// loadConfig resolves configuration from an optional file, the
// environment, and defaults, in that precedence order.
func loadConfig(path string) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.FromEnv()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildVerifier constructs the dependency-injected cache/fetcher pair
// owned by the verifier for the process lifetime.
func buildVerifier(cfg *config.Config, verbose bool) (*verify.Verifier, error) {
	store, err := cache.New(&cache.Config{
		Dir:     cfg.CacheDir,
		TTL:     cfg.CacheTTL(),
		Verbose: verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	fetcher := fetch.NewBrowserFetcher(&fetch.BrowserFetcherConfig{
		StartupTimeout: cfg.StartupTimeout(),
		LoadTimeout:    cfg.LoadTimeout(),
		Verbose:        verbose,
	})

	return verify.NewVerifier(fetcher, store, verbose), nil
}
