package config

import (
	"errors"
	"hms-console/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("HMS_BASE_URL", "")
		t.Setenv("APP_CORS_ALLOWED_ORIGINS", "")

		cfg := NewInternalConfig()

		assert.Equal(t, "http://127.0.0.1:5000", cfg.HMS.BaseUrl)
		assert.Equal(t, time.Duration(0), cfg.HMS.RequestTimeout(), "no timeout unless configured")
		assert.Equal(t, []string{"*"}, cfg.App.CorsAllowedOrigins)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("HMS_BASE_URL", "https://hms.example.com/")
		t.Setenv("HMS_REQUEST_TIMEOUT_IN_SECONDS", "15")
		t.Setenv("APP_CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

		cfg := NewInternalConfig()

		assert.Equal(t, "https://hms.example.com", cfg.HMS.BaseUrl, "trailing slash is trimmed")
		assert.Equal(t, 15*time.Second, cfg.HMS.RequestTimeout())
		assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.App.CorsAllowedOrigins)
	})

	t.Run("Unparsable Number Falls Back", func(t *testing.T) {
		t.Setenv("APP_MAX_REQUEST", "many")

		cfg := NewInternalConfig()

		assert.Equal(t, 20, cfg.App.MaxRequests)
	})
}

func TestInternalConfig_Validate(t *testing.T) {
	t.Run("Bad Base URL", func(t *testing.T) {
		cfg := NewInternalConfig()
		cfg.HMS.BaseUrl = "not a url"

		err := cfg.Validate()

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, "baseurl must be a valid URL", customErr.ClientMessage)
	})

	t.Run("Unknown Environment", func(t *testing.T) {
		cfg := NewInternalConfig()
		cfg.App.Env = "staging"

		err := cfg.Validate()

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, "env must be one of [development, production]", customErr.ClientMessage)
	})

	t.Run("Rate Limit Must Be Positive", func(t *testing.T) {
		cfg := NewInternalConfig()
		cfg.App.MaxRequests = 0

		assert.Error(t, cfg.Validate())
	})
}
