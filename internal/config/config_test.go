package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSecret = "Xk3!mQ9pL2wR7tY5uZ8aB1cD4eF6gH0j"

// clearEnv resets every TRIMSHOP_ variable so tests are hermetic.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TRIMSHOP_DB_PATH", "TRIMSHOP_SERVER_HOST", "TRIMSHOP_SERVER_PORT",
		"TRIMSHOP_ENV", "TRIMSHOP_LOG_LEVEL", "TRIMSHOP_JWT_SECRET",
		"TRIMSHOP_ADMIN_EMAIL", "TRIMSHOP_ADMIN_PASSWORD",
		"TRIMSHOP_CORS_ORIGINS", "TRIMSHOP_RATE_LIMIT_PER_MINUTE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIMSHOP_JWT_SECRET", validSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "./data/trimshop.db", cfg.DBPath)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.False(t, cfg.BootstrapEnabled())
	assert.Equal(t, "localhost:8080", cfg.ServerAddr())
}

func TestLoadRejectsShortSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIMSHOP_JWT_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRIMSHOP_JWT_SECRET")
}

func TestLoadRejectsWeakSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIMSHOP_JWT_SECRET", "change-me-to-32-byte-secret-key!")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "known default")
}

func TestLoadCORSOrigins(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIMSHOP_JWT_SECRET", validSecret)
	t.Setenv("TRIMSHOP_CORS_ORIGINS", "https://trimshop.example,https://www.trimshop.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://trimshop.example", "https://www.trimshop.example"}, cfg.CORSOrigins)
}

func TestLoadBootstrapEnabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIMSHOP_JWT_SECRET", validSecret)
	t.Setenv("TRIMSHOP_ADMIN_EMAIL", "admin@trimshop.test")
	t.Setenv("TRIMSHOP_ADMIN_PASSWORD", "pw")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.BootstrapEnabled())
}

func TestLoadRejectsZeroRateLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIMSHOP_JWT_SECRET", validSecret)
	t.Setenv("TRIMSHOP_RATE_LIMIT_PER_MINUTE", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRIMSHOP_RATE_LIMIT_PER_MINUTE")
}
