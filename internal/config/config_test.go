package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "llama-3.1-sonar-large-128k-online", cfg.Perplexity.Model)
	assert.Equal(t, 80, cfg.Policy.CompliantMin)
	assert.Equal(t, 50, cfg.Policy.PartialMin)
	assert.Equal(t, time.Hour, cfg.AnalysisTTL())
	assert.Equal(t, 24*time.Hour, cfg.DocumentTTL())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8080
  debug: true
policy:
  compliantMin: 85
  partialMin: 40
cache:
  analysisTTL: 30m
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, 85, cfg.Policy.CompliantMin)
	assert.Equal(t, 40, cfg.Policy.PartialMin)
	assert.Equal(t, 30*time.Minute, cfg.AnalysisTTL())
	// Unset fields keep their defaults.
	assert.Equal(t, "llama-3.1-sonar-large-128k-online", cfg.Perplexity.Model)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("MISTRAL_API_KEY", "mk-test")
	t.Setenv("DEBUG", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "mk-test", cfg.Mistral.APIKey)
	assert.True(t, cfg.Server.Debug)
}

func TestInvalidTTLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cache:\n  analysisTTL: bogus\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.AnalysisTTL())
}
