package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCredentials(t *testing.T) {
	t.Setenv("TRIPAY_API_KEY", "DEV-key")
	t.Setenv("TRIPAY_PRIVATE_KEY", "private")
	t.Setenv("TRIPAY_MERCHANT_CODE", "T0001")
}

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		setCredentials(t)
		t.Setenv("TRIPAY_PRODUCTION", "true")
		t.Setenv("TRIPAY_TIMEOUT", "30s")
		t.Setenv("TRIPAY_CHANNEL_CACHE_TTL", "5m")
		t.Setenv("APP_ENV", "test")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "DEV-key", cfg.APIKey)
		assert.Equal(t, "private", cfg.PrivateKey)
		assert.Equal(t, "T0001", cfg.MerchantCode)
		assert.True(t, cfg.Production)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, 5*time.Minute, cfg.ChannelCacheTTL)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("Defaults", func(t *testing.T) {
		setCredentials(t)
		t.Setenv("TRIPAY_PRODUCTION", "")
		t.Setenv("TRIPAY_TIMEOUT", "")
		t.Setenv("TRIPAY_CHANNEL_CACHE_TTL", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.False(t, cfg.Production)
		assert.Equal(t, 15*time.Second, cfg.Timeout)
		assert.Zero(t, cfg.ChannelCacheTTL)
	})

	t.Run("Missing credentials", func(t *testing.T) {
		t.Setenv("TRIPAY_API_KEY", "")
		t.Setenv("TRIPAY_PRIVATE_KEY", "private")
		t.Setenv("TRIPAY_MERCHANT_CODE", "T0001")

		_, err := LoadConfig()
		assert.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("Invalid production flag", func(t *testing.T) {
		setCredentials(t)
		t.Setenv("TRIPAY_PRODUCTION", "maybe")

		_, err := LoadConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TRIPAY_PRODUCTION")
	})

	t.Run("Invalid timeout", func(t *testing.T) {
		setCredentials(t)
		t.Setenv("TRIPAY_PRODUCTION", "")
		t.Setenv("TRIPAY_TIMEOUT", "soon")

		_, err := LoadConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TRIPAY_TIMEOUT")
	})
}

func TestConfig_Tripay(t *testing.T) {
	cfg := &Config{
		APIKey:       "key",
		PrivateKey:   "secret",
		MerchantCode: "T0001",
		Production:   true,
	}

	tc := cfg.Tripay()
	assert.Equal(t, "key", tc.APIKey)
	assert.Equal(t, "secret", tc.PrivateKey)
	assert.Equal(t, "T0001", tc.MerchantCode)
	assert.True(t, tc.Production)
}
