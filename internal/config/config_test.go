package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigEnvOnly(t *testing.T) {
	t.Setenv("POCKETCASTS_EMAIL", "listener@example.com")
	t.Setenv("POCKETCASTS_PASSWORD", "secret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("HTTP_TIMEOUT", "5s")

	cfg, err := New(WithDisableFlagsParsing(true))
	require.NoError(t, err)

	assert.Equal(t, "listener@example.com", cfg.Email)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "us", cfg.Region)
}

func TestConfigDefaults(t *testing.T) {
	t.Setenv("POCKETCASTS_EMAIL", "listener@example.com")
	t.Setenv("POCKETCASTS_PASSWORD", "secret")

	cfg, err := New(WithDisableFlagsParsing(true))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "us", cfg.Region)
}

func TestConfigEnvOverridesFlags(t *testing.T) {
	t.Setenv("POCKETCASTS_EMAIL", "env@example.com")
	t.Setenv("POCKETCASTS_PASSWORD", "secret")

	os.Args = []string{
		"testbin",
		"-e", "cli@example.com",
		"-l", "debug",
	}

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "env@example.com", cfg.Email) // env wins over the flag
	assert.Equal(t, "debug", cfg.LogLevel)        // flag survives when env is silent
}

func TestConfigMissingCredentials(t *testing.T) {
	t.Setenv("POCKETCASTS_EMAIL", "")
	t.Setenv("POCKETCASTS_PASSWORD", "")

	_, err := New(WithDisableFlagsParsing(true))
	require.Error(t, err)
}

func TestConfigMalformedEmail(t *testing.T) {
	t.Setenv("POCKETCASTS_EMAIL", "not-an-email")
	t.Setenv("POCKETCASTS_PASSWORD", "secret")

	_, err := New(WithDisableFlagsParsing(true))
	require.Error(t, err)
}

func TestConfigRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("POCKETCASTS_EMAIL", "listener@example.com")
	t.Setenv("POCKETCASTS_PASSWORD", "secret")
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := New(WithDisableFlagsParsing(true))
	require.Error(t, err)
}
