package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV", "LOG_LEVEL", "SERVER_PORT", "STATIC_DIR",
	"CONTENT_DIR", "CONTENT_BASE_URL", "CONTENT_TIMEOUT_SECONDS", "REDIS_URL",
	"CAROUSEL_INTERVAL_MS", "TRAINING_INTERVAL_MS", "CAROUSEL_COOLDOWN_MS", "TESTIMONIAL_START_DELAY_MS",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "CONTACT_TO",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		os.Unsetenv(key)
	}
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "./data", cfg.Content.Dir)
	assert.Empty(t, cfg.Content.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Content.Timeout())
	assert.Equal(t, 5*time.Second, cfg.Carousel.Interval())
	assert.Equal(t, 6*time.Second, cfg.Carousel.TrainingInterval())
	assert.Equal(t, 10*time.Second, cfg.Carousel.Cooldown())
	assert.Equal(t, 2*time.Second, cfg.Carousel.TestimonialDelay())
	assert.Equal(t, 587, cfg.Contact.SMTPPort)
	assert.False(t, cfg.Contact.SMTPEnabled())
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	clearEnv(t)
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("CONTENT_BASE_URL", "https://cdn.example.com/data")
	os.Setenv("CAROUSEL_INTERVAL_MS", "4000")
	os.Setenv("SMTP_USER", "me@example.com")
	os.Setenv("SMTP_PASS", "secret")
	defer clearEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "https://cdn.example.com/data", cfg.Content.BaseURL)
	assert.Equal(t, 4*time.Second, cfg.Carousel.Interval())
	assert.True(t, cfg.Contact.SMTPEnabled())
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	clearEnv(t)
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
CONTENT_DIR=/srv/content
CAROUSEL_COOLDOWN_MS=5000
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/srv/content", cfg.Content.Dir)
	assert.Equal(t, 5*time.Second, cfg.Carousel.Cooldown())
}

// TestLoad_ValidationFailure verifies that a zeroed required field returns an error.
func TestLoad_ValidationFailure(t *testing.T) {
	clearEnv(t)
	os.Setenv("SERVER_PORT", "0")
	defer clearEnv(t)

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration: SERVER_PORT")
}

func TestLoad_NegativeTimings(t *testing.T) {
	clearEnv(t)
	os.Setenv("CAROUSEL_COOLDOWN_MS", "-1")
	defer clearEnv(t)

	_, err := Load(".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}
