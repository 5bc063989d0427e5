package config

import (
	"fmt"
	"os"
	"strings" // For LogLevel normalization
	"time"

	"github.com/joho/godotenv"
)

const DefaultAPIBaseURL = "https://api.telegram.org"

// AppConfig holds all configuration for the application
type AppConfig struct {
	Token       string
	UserID      string // Default recipient for outgoing messages
	APIBaseURL  string
	HTTPTimeout time.Duration // Zero leaves the HTTP client without a timeout
	LogLevel    string
	Environment string
	CronSpec    string // Empty disables cron mode
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from a lookup function.
func FromEnv(getenv func(string) string) (*AppConfig, error) {
	cfg := &AppConfig{}

	cfg.Token = getenv("TOKEN")
	if cfg.Token == "" {
		return nil, fmt.Errorf("TOKEN is not set")
	}

	cfg.UserID = getenv("USER_ID")
	if cfg.UserID == "" {
		return nil, fmt.Errorf("USER_ID is not set")
	}

	cfg.APIBaseURL = strings.TrimRight(getenv("API_BASE_URL"), "/")
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}

	if raw := getenv("HTTP_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
		}
		if timeout < 0 {
			return nil, fmt.Errorf("invalid HTTP_TIMEOUT: must not be negative, got %s", raw)
		}
		cfg.HTTPTimeout = timeout
	}

	cfg.LogLevel = strings.ToLower(getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.CronSpec = getenv("CRON_SPEC")

	return cfg, nil
}
