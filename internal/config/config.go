// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Port    string
	DBPath  string
	WebPath string

	// NonceSecret signs the anti-forgery tokens; NonceTTL is how long
	// an issued token stays valid.
	NonceSecret string
	NonceTTL    time.Duration

	// AdminPasswordHash is the bcrypt hash of the shared management
	// credential.
	AdminPasswordHash string

	// CurrencySymbol and CurrencySymbolPlacement are display settings
	// handed to the presentation side ("before" or "after" the price).
	CurrencySymbol          string
	CurrencySymbolPlacement string

	LogLevel string
}

// Load loads configuration from a .env file (if present) and the
// environment.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:                    getEnvOrDefault("PORT", "8080"),
		DBPath:                  getEnvOrDefault("DB_PATH", "./data/registry.db"),
		WebPath:                 getEnvOrDefault("WEB_PATH", ""),
		CurrencySymbol:          getEnvOrDefault("CURRENCY_SYMBOL", "$"),
		CurrencySymbolPlacement: getEnvOrDefault("CURRENCY_SYMBOL_PLACEMENT", "before"),
		LogLevel:                getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if cfg.NonceSecret = os.Getenv("NONCE_SECRET"); cfg.NonceSecret == "" {
		return nil, fmt.Errorf("NONCE_SECRET environment variable is required")
	}

	if cfg.AdminPasswordHash = os.Getenv("ADMIN_PASSWORD_HASH"); cfg.AdminPasswordHash == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH environment variable is required")
	}

	ttl := getEnvOrDefault("NONCE_TTL", "12h")
	parsed, err := time.ParseDuration(ttl)
	if err != nil {
		return nil, fmt.Errorf("invalid NONCE_TTL %q: %w", ttl, err)
	}
	cfg.NonceTTL = parsed

	if p := cfg.CurrencySymbolPlacement; p != "before" && p != "after" {
		return nil, fmt.Errorf("CURRENCY_SYMBOL_PLACEMENT must be \"before\" or \"after\", got %q", p)
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
