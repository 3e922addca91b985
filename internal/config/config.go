package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"tripay-go/pkg/tripay"

	"github.com/joho/godotenv"
)

var ErrMissingCredentials = errors.New("TRIPAY_API_KEY, TRIPAY_PRIVATE_KEY and TRIPAY_MERCHANT_CODE must be set")

type Config struct {
	APIKey          string
	PrivateKey      string
	MerchantCode    string
	Production      bool
	Timeout         time.Duration
	ChannelCacheTTL time.Duration
	AppEnv          string
	LogLevel        string
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:       os.Getenv("TRIPAY_API_KEY"),
		PrivateKey:   os.Getenv("TRIPAY_PRIVATE_KEY"),
		MerchantCode: os.Getenv("TRIPAY_MERCHANT_CODE"),
		AppEnv:       os.Getenv("APP_ENV"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		Timeout:      15 * time.Second,
	}

	if cfg.APIKey == "" || cfg.PrivateKey == "" || cfg.MerchantCode == "" {
		return nil, ErrMissingCredentials
	}

	var err error
	if v := os.Getenv("TRIPAY_PRODUCTION"); v != "" {
		if cfg.Production, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("invalid TRIPAY_PRODUCTION: %w", err)
		}
	}
	if v := os.Getenv("TRIPAY_TIMEOUT"); v != "" {
		if cfg.Timeout, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid TRIPAY_TIMEOUT: %w", err)
		}
	}
	if v := os.Getenv("TRIPAY_CHANNEL_CACHE_TTL"); v != "" {
		if cfg.ChannelCacheTTL, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("invalid TRIPAY_CHANNEL_CACHE_TTL: %w", err)
		}
	}

	return cfg, nil
}

func (c *Config) Tripay() tripay.Config {
	return tripay.Config{
		APIKey:       c.APIKey,
		PrivateKey:   c.PrivateKey,
		MerchantCode: c.MerchantCode,
		Production:   c.Production,
	}
}
