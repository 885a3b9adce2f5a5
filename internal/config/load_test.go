package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef" // 32 chars, the minimum

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MESTO_AUTH_JWT_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "mestodb", cfg.Database.Name)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MESTO_AUTH_JWT_SECRET", testSecret)
	t.Setenv("MESTO_SERVER_PORT", "8080")
	t.Setenv("MESTO_SERVER_LOG_LEVEL", "debug")
	t.Setenv("MESTO_DATABASE_URI", "mongodb://db:27017")
	t.Setenv("MESTO_DATABASE_NAME", "mesto_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "mongodb://db:27017", cfg.Database.URI)
	assert.Equal(t, "mesto_test", cfg.Database.Name)
}

func TestLoadMissingSecret(t *testing.T) {
	t.Setenv("MESTO_AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadShortSecret(t *testing.T) {
	// Secrets below 32 characters fail validation so a weak key can never
	// make it into a running server.
	t.Setenv("MESTO_AUTH_JWT_SECRET", strings.Repeat("x", 31))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadInvalidLogLevel(t *testing.T) {
	t.Setenv("MESTO_AUTH_JWT_SECRET", testSecret)
	t.Setenv("MESTO_SERVER_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
}
