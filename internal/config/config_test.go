package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"cache_dir": "/tmp/verify-cache",
		"cache_ttl_days": 3,
		"load_timeout_secs": 20,
		"port": 9090
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/verify-cache", cfg.CacheDir)
	assert.Equal(t, 3, cfg.CacheTTLDays)
	assert.Equal(t, 20, cfg.LoadTimeoutSecs)
	assert.Equal(t, 9090, cfg.Port)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "{not json"))
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("PORT", "7070")

	cfg := &Config{APIKey: "file-key"}
	cfg.FromEnv()

	assert.Equal(t, "file-key", cfg.APIKey, "file value wins over env")
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
	assert.Equal(t, 7070, cfg.Port)
}

func TestApplyDefaultsAndDurations(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultCacheTTLDays, cfg.CacheTTLDays)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.CacheTTL())
	assert.Equal(t, time.Duration(0), cfg.LoadTimeout(), "zero means fetcher default")
}

func TestValidate(t *testing.T) {
	good := &Config{CacheTTLDays: 7, Port: 8080}
	assert.NoError(t, good.Validate())

	assert.Error(t, (&Config{CacheTTLDays: -1}).Validate())
	assert.Error(t, (&Config{LoadTimeoutSecs: -5}).Validate())
	assert.Error(t, (&Config{Port: 99999}).Validate())
}
