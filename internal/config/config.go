// Package config provides environment-backed configuration for the server
// and batch commands.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultPort             = 8080
	DefaultBatchMinScore    = 30.0
	DefaultBatchConcurrency = 4
	DefaultJWTExpiryHours   = 24
)

// Config holds runtime configuration. DatabaseURL and JWTSecret have no
// defaults and must be provided.
type Config struct {
	Port             int     `validate:"gt=0,lte=65535"`
	DatabaseURL      string  `validate:"required"`
	JWTSecret        string  `validate:"required,min=32"`
	JWTExpiryHours   int     `validate:"gt=0"`
	BatchMinScore    float64 `validate:"gte=0,lte=100"`
	BatchConcurrency int     `validate:"gt=0"`
	Verbose          bool
}

// FromEnv builds a Config from environment variables:
// PORT, DATABASE_URL, JWT_SECRET, JWT_EXPIRY_HOURS, BATCH_MIN_SCORE,
// BATCH_CONCURRENCY, VERBOSE.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:             DefaultPort,
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTExpiryHours:   DefaultJWTExpiryHours,
		BatchMinScore:    DefaultBatchMinScore,
		BatchConcurrency: DefaultBatchConcurrency,
		Verbose:          os.Getenv("VERBOSE") == "true",
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("JWT_EXPIRY_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRY_HOURS %q: %w", v, err)
		}
		cfg.JWTExpiryHours = hours
	}
	if v := os.Getenv("BATCH_MIN_SCORE"); v != "" {
		score, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid BATCH_MIN_SCORE %q: %w", v, err)
		}
		cfg.BatchMinScore = score
	}
	if v := os.Getenv("BATCH_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BATCH_CONCURRENCY %q: %w", v, err)
		}
		cfg.BatchConcurrency = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var configValidate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
