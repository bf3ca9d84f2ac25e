package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ModeStdio, cfg.Server.Mode)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 3, cfg.Fetch.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Fetch.RetryDelay)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 1000, cfg.Cache.Size)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.False(t, cfg.Log.Debug)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PARLIAMENT_MCP_FETCH_TIMEOUT", "10s")
	t.Setenv("PARLIAMENT_MCP_FETCH_MAX_ATTEMPTS", "5")
	t.Setenv("PARLIAMENT_MCP_FETCH_USER_AGENT", "custom-agent")
	t.Setenv("PARLIAMENT_MCP_CACHE_ENABLED", "true")
	t.Setenv("PARLIAMENT_MCP_SERVER_MODE", "http")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 5, cfg.Fetch.MaxAttempts)
	assert.Equal(t, "custom-agent", cfg.Fetch.UserAgent)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, ModeHTTP, cfg.Server.Mode)
}

func TestLoadOverridesWinOverEnvironment(t *testing.T) {
	t.Setenv("PARLIAMENT_MCP_SERVER_ADDR", ":9000")

	cfg, err := Load(map[string]any{
		"server.addr": ":7000",
		"server.mode": ModeSSE,
		"log.debug":   true,
	})
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, ModeSSE, cfg.Server.Mode)
	assert.True(t, cfg.Log.Debug)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name      string
		overrides map[string]any
	}{
		{"unknown mode", map[string]any{"server.mode": "grpc"}},
		{"zero attempts", map[string]any{"fetch.max_attempts": 0}},
		{"zero timeout", map[string]any{"fetch.timeout": "0s"}},
		{"negative delay", map[string]any{"fetch.retry_delay": "-1s"}},
		{"empty cache", map[string]any{"cache.size": 0}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.overrides)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "configuration validation failed")
		})
	}
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	t.Setenv("PARLIAMENT_MCP_FETCH_TIMEOUT", "soon")

	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal configuration")
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PARLIAMENT_MCP_FETCH_RETRY_DELAY=250ms\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("PARLIAMENT_MCP_FETCH_RETRY_DELAY") })

	require.NoError(t, LoadEnvFile(path))
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Fetch.RetryDelay)
	assert.NoError(t, LoadEnvFile(""))
	assert.Error(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}

func TestTransformEnvKey(t *testing.T) {
	testCases := map[string]string{
		"PARLIAMENT_MCP_FETCH_TIMEOUT":      "fetch.timeout",
		"PARLIAMENT_MCP_FETCH_MAX_ATTEMPTS": "fetch.max_attempts",
		"PARLIAMENT_MCP_CACHE_ENABLED":      "cache.enabled",
		"PARLIAMENT_MCP_DEBUG":              "debug",
		"PARLIAMENT_MCP_":                   "",
	}
	for input, expected := range testCases {
		assert.Equal(t, expected, transformEnvKey(input), input)
	}
}

func TestConversions(t *testing.T) {
	cfg := Default()
	cfg.Cache.Enabled = true

	fetchConfig := cfg.FetchSettings()
	assert.Equal(t, cfg.Fetch.Timeout, fetchConfig.Timeout)
	assert.Equal(t, cfg.Fetch.MaxAttempts, fetchConfig.MaxAttempts)
	assert.Equal(t, "uk-parliament-mcp", fetchConfig.UserAgent)

	options := cfg.ClientOptions()
	assert.True(t, options.CacheEnabled)
	assert.Equal(t, cfg.Cache.TTL, options.CacheTTL)
}
