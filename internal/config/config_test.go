package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg := LoadFromEnv()

	assert.Equal(t, ":4566", cfg.ListenAddr)
	assert.Equal(t, "us-east-1", cfg.DefaultRegion)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, float64(100), cfg.RateLimitRPS)
	assert.Equal(t, 200, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("QSMOCK_LISTEN_ADDR", ":9999")
	t.Setenv("QSMOCK_DEFAULT_REGION", "eu-west-1")
	t.Setenv("QSMOCK_LOG_LEVEL", "debug")
	t.Setenv("QSMOCK_RATE_LIMIT_RPS", "10.5")
	t.Setenv("QSMOCK_RATE_LIMIT_BURST", "30")
	t.Setenv("QSMOCK_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := LoadFromEnv()

	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "eu-west-1", cfg.DefaultRegion)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10.5, cfg.RateLimitRPS)
	assert.Equal(t, 30, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.in}
		assert.Equal(t, tt.want, cfg.SlogLevel(), "level %s", tt.in)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"# comment\n"+
			"QSMOCK_TEST_A=plain\n"+
			"QSMOCK_TEST_B=\"quoted\"\n"+
			"\n"+
			"not a pair\n",
	), 0o600))
	t.Setenv("QSMOCK_TEST_A", "already-set")
	t.Setenv("QSMOCK_TEST_B", "")
	require.NoError(t, os.Unsetenv("QSMOCK_TEST_B"))

	require.NoError(t, LoadDotEnv(path))

	// Existing environment wins; quotes are stripped.
	assert.Equal(t, "already-set", os.Getenv("QSMOCK_TEST_A"))
	assert.Equal(t, "quoted", os.Getenv("QSMOCK_TEST_B"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
