// Package config provides configuration loading and validation for the
// verification service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config is the service configuration. It can be loaded from a JSON file;
// missing values use defaults or environment variables.
type Config struct {
	// Cache
	CacheDir     string `json:"cache_dir,omitempty"`
	CacheTTLDays int    `json:"cache_ttl_days,omitempty"`

	// Fetching (seconds)
	StartupTimeoutSecs int `json:"startup_timeout_secs,omitempty"`
	LoadTimeoutSecs    int `json:"load_timeout_secs,omitempty"`

	// Collaborators
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key; empty disables advisory analysis
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL; empty disables the candidate catalog

	// Server
	Port int `json:"port,omitempty"`

	Verbose bool `json:"verbose,omitempty"`
}

// Defaults used when neither file nor environment provides a value.
const (
	DefaultCacheTTLDays = 7
	DefaultPort         = 8080
)

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv fills empty fields from environment variables. Call after
// godotenv has loaded any .env file.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.CacheDir == "" {
		c.CacheDir = os.Getenv("CACHE_DIR")
	}
	if c.Port == 0 {
		if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			c.Port = port
		}
	}
}

// ApplyDefaults fills remaining zero values with defaults.
func (c *Config) ApplyDefaults() {
	if c.CacheTTLDays == 0 {
		c.CacheTTLDays = DefaultCacheTTLDays
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
}

// Validate checks numeric ranges.
func (c *Config) Validate() error {
	if c.CacheTTLDays < 0 {
		return fmt.Errorf("config error: 'cache_ttl_days' must be non-negative")
	}
	if c.StartupTimeoutSecs < 0 || c.LoadTimeoutSecs < 0 {
		return fmt.Errorf("config error: timeouts must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range")
	}
	return nil
}

// CacheTTL returns the cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLDays) * 24 * time.Hour
}

// StartupTimeout returns the browser startup timeout, or zero to use the
// fetcher default.
func (c *Config) StartupTimeout() time.Duration {
	return time.Duration(c.StartupTimeoutSecs) * time.Second
}

// LoadTimeout returns the page load timeout, or zero to use the fetcher
// default.
func (c *Config) LoadTimeout() time.Duration {
	return time.Duration(c.LoadTimeoutSecs) * time.Second
}
