package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// BaseCurrency is the currency all rates are expressed relative to.
	// Its stored rate is always exactly 1.
	BaseCurrency string

	// Upstream FX provider.
	FXProviderURL     string
	FXProviderTimeout time.Duration

	// RateRefreshInterval is how often the background refresher runs.
	RateRefreshInterval time.Duration

	// RateLimit is an ulule/limiter formatted rate (e.g. "100-M") applied to
	// the public endpoints per client IP.
	RateLimit string

	// CORSAllowOrigins lists the storefront origins allowed to call the
	// public endpoints.
	CORSAllowOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BASE_CURRENCY", "USD")
	viper.SetDefault("FX_PROVIDER_URL", "https://open.er-api.com/v6")
	viper.SetDefault("FX_PROVIDER_TIMEOUT", "10s")
	viper.SetDefault("RATE_REFRESH_INTERVAL", "6h")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.BaseCurrency = viper.GetString("BASE_CURRENCY")
	cfg.FXProviderURL = viper.GetString("FX_PROVIDER_URL")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowOrigins = viper.GetStringSlice("CORS_ALLOW_ORIGINS")

	cfg.FXProviderTimeout = viper.GetDuration("FX_PROVIDER_TIMEOUT")
	if cfg.FXProviderTimeout <= 0 {
		cfg.FXProviderTimeout = 10 * time.Second
		log.Printf("Warning: Invalid FX_PROVIDER_TIMEOUT. Defaulting to %s\n", cfg.FXProviderTimeout)
	}

	cfg.RateRefreshInterval = viper.GetDuration("RATE_REFRESH_INTERVAL")
	if cfg.RateRefreshInterval <= 0 {
		cfg.RateRefreshInterval = 6 * time.Hour
		log.Printf("Warning: Invalid RATE_REFRESH_INTERVAL. Defaulting to %s\n", cfg.RateRefreshInterval)
	}

	return cfg, nil
}
