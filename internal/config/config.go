package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the client
type Config struct {
	APIURL         string
	APITimeout     time.Duration
	LogLevel       string
	TokenDBPath    string
	PrometheusPort string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is honoured when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APITimeout:     15 * time.Second,
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "info"),
		PrometheusPort: getEnvOrDefault("PROMETHEUS_PORT", "9090"),
	}

	// Required environment variables
	if cfg.APIURL = os.Getenv("API_URL"); cfg.APIURL == "" {
		return nil, fmt.Errorf("API_URL environment variable is required")
	}

	if raw := os.Getenv("API_TIMEOUT"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("API_TIMEOUT must be a positive number of seconds")
		}
		cfg.APITimeout = time.Duration(secs) * time.Second
	}

	if cfg.TokenDBPath = os.Getenv("TOKEN_DB_PATH"); cfg.TokenDBPath == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cache directory: %w", err)
		}
		cfg.TokenDBPath = filepath.Join(dir, "babanaplo", "token")
	}

	return cfg, nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
