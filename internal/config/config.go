package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	Port        string
	BaseURL     string
	Environment string // development, staging, production

	// Database. Empty runs on the built-in fixtures in memory.
	DatabaseURL string

	// Session
	SessionSecret string
	SessionMaxAge time.Duration

	// Lists
	PageSize     int
	WorkPageSize int

	// SubmitDelay holds every write for this long, like the remote call it stands in for.
	SubmitDelay time.Duration
}

// Load reads configuration from environment variables.
// In development, it will also load from a .env file if present.
func Load() (*Config, error) {
	// Load .env file in development (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	var err error
	if cfg.SessionMaxAge, err = getDuration("SESSION_MAX_AGE", 7*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.SubmitDelay, err = getDuration("SUBMIT_DELAY", time.Second); err != nil {
		return nil, err
	}
	if cfg.PageSize, err = getInt("PAGE_SIZE", 5); err != nil {
		return nil, err
	}
	if cfg.WorkPageSize, err = getInt("WORK_PAGE_SIZE", 10); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that have no usable default.
func (c *Config) Validate() error {
	// Need 64 bytes for hash key + block key
	if len(c.SessionSecret) < 64 {
		return fmt.Errorf("SESSION_SECRET must be at least 64 characters, got %d", len(c.SessionSecret))
	}
	if c.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be positive, got %d", c.PageSize)
	}
	if c.WorkPageSize < 1 {
		return fmt.Errorf("WORK_PAGE_SIZE must be positive, got %d", c.WorkPageSize)
	}
	switch c.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got %q", c.Environment)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsesDatabase reports whether a PostgreSQL database is configured.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
