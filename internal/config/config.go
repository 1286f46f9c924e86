// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store backends accepted in STORE_BACKEND.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8000".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// StoreBackend selects where venues, bookings and blocked dates live:
	// StorePostgres (default) or StoreMemory.
	StoreBackend string

	// DatabaseURL is the Postgres connection string. Required for StorePostgres.
	DatabaseURL string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"]. Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64

	// AutoMigrate applies pending migrations at startup. Defaults to true.
	AutoMigrate bool
}

const defaultMaxBodyBytes = 1 << 20

// Load reads configuration from the environment, after loading a .env file
// from the working directory if one exists. Variables already set in the
// environment win over .env entries.
// Returns an error naming every missing or invalid variable.
func Load() (Config, error) {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	cfg := Config{
		Port:         getEnv("PORT", "8000"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", StorePostgres)),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "*")),
	}

	var missing, errs []string

	switch cfg.StoreBackend {
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	case StoreMemory:
	default:
		errs = append(errs, fmt.Sprintf("STORE_BACKEND must be %q or %q, got %q", StorePostgres, StoreMemory, cfg.StoreBackend))
	}

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", strconv.Itoa(defaultMaxBodyBytes)), 10, 64)
	if err != nil || maxBody <= 0 {
		errs = append(errs, "MAX_BODY_BYTES must be a positive integer")
	}
	cfg.MaxBodyBytes = maxBody

	autoMigrate, err := strconv.ParseBool(getEnv("AUTO_MIGRATE", "true"))
	if err != nil {
		errs = append(errs, "AUTO_MIGRATE must be a boolean")
	}
	cfg.AutoMigrate = autoMigrate

	if len(missing) > 0 {
		errs = append([]string{"required environment variables not set: " + strings.Join(missing, ", ")}, errs...)
	}
	if len(errs) > 0 {
		return Config{}, errors.New(strings.Join(errs, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
