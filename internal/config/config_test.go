package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig(env string) *Config {
	return &Config{
		RateLimit: RateLimitConfig{Enabled: true, RequestsPerSecond: 10, BurstSize: 20},
		CORS:      CORSConfig{AllowedOrigins: []string{"https://helpdesk.example.com"}},
		WebSocket: WebSocketConfig{AllowedOrigins: []string{"https://helpdesk.example.com"}},
		App:       AppConfig{Environment: env},
	}
}

func TestConfig_EnvironmentHelpers(t *testing.T) {
	assert.True(t, baseConfig("development").IsDevelopment())
	assert.False(t, baseConfig("development").IsProduction())
	assert.True(t, baseConfig("production").IsProduction())
	assert.False(t, baseConfig("production").IsDevelopment())
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid production config passes", func(t *testing.T) {
		require.NoError(t, baseConfig("production").Validate())
	})

	t.Run("production requires websocket origins", func(t *testing.T) {
		cfg := baseConfig("production")
		cfg.WebSocket.AllowedOrigins = nil

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "WS_ALLOWED_ORIGINS")
	})

	t.Run("production rejects wildcard CORS", func(t *testing.T) {
		cfg := baseConfig("production")
		cfg.CORS.AllowedOrigins = []string{"*"}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CORS_ALLOWED_ORIGINS")
	})

	t.Run("development allows wildcard CORS and empty ws origins", func(t *testing.T) {
		cfg := baseConfig("development")
		cfg.CORS.AllowedOrigins = []string{"*"}
		cfg.WebSocket.AllowedOrigins = nil

		require.NoError(t, cfg.Validate())
	})

	t.Run("enabled rate limit needs positive settings", func(t *testing.T) {
		cfg := baseConfig("development")
		cfg.RateLimit.RequestsPerSecond = 0
		cfg.RateLimit.BurstSize = -1

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RATE_LIMIT_RPS")
		assert.Contains(t, err.Error(), "RATE_LIMIT_BURST")
	})
}
