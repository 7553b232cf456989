package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// RateLimit is a limiter formatted rate, e.g. "100-M" for 100 requests
	// per minute per client IP.
	RateLimit string

	// RecurrenceDefaultMonths is the occurrence count used when a series
	// creation request does not specify one.
	RecurrenceDefaultMonths int

	// TimezoneFallbackUTC makes an unknown TimeZone header fall back to UTC
	// instead of rejecting the request.
	TimezoneFallbackUTC bool
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables take precedence over .env values.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("RECURRENCE_DEFAULT_MONTHS", 12)
	viper.SetDefault("TIMEZONE_FALLBACK_UTC", false)

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:             viper.GetString("PGSQL_URL"),
		Port:                    viper.GetString("PORT"),
		IsProduction:            viper.GetBool("IS_PRODUCTION"),
		RateLimit:               viper.GetString("RATE_LIMIT"),
		RecurrenceDefaultMonths: viper.GetInt("RECURRENCE_DEFAULT_MONTHS"),
		TimezoneFallbackUTC:     viper.GetBool("TIMEZONE_FALLBACK_UTC"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable not set")
	}
	if cfg.RecurrenceDefaultMonths < 1 {
		return nil, fmt.Errorf("RECURRENCE_DEFAULT_MONTHS must be at least 1, got %d", cfg.RecurrenceDefaultMonths)
	}

	return cfg, nil
}
