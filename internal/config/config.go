// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the generator.
package config

import (
	"fmt"
	"os"
)

// Config holds all configuration values loaded from the environment.
type Config struct {
	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Object storage (S3-compatible). URL and ServiceKey are required;
	// the generator cannot run without somewhere to put screenshots.
	ObjectStoreURL        string
	ObjectStoreAccessKey  string
	ObjectStoreServiceKey string
	ObjectStoreRegion     string
	ObjectStorePublicURL  string

	// Valkey (optional fingerprint cache; empty host disables it)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// External pre-generated design queue
	BatchFile string
}

// Load reads configuration from environment variables, applying development
// defaults for Postgres and Valkey. Object-store settings have no defaults:
// a missing URL or service key is a startup misconfiguration and returns
// an error.
func Load() (*Config, error) {
	cfg := &Config{
		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "designforge"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "designforge"),

		ObjectStoreURL:        os.Getenv("OBJECT_STORE_URL"),
		ObjectStoreAccessKey:  envOrDefault("OBJECT_STORE_ACCESS_KEY", "designforge"),
		ObjectStoreServiceKey: os.Getenv("OBJECT_STORE_SERVICE_KEY"),
		ObjectStoreRegion:     envOrDefault("OBJECT_STORE_REGION", "auto"),
		ObjectStorePublicURL:  os.Getenv("OBJECT_STORE_PUBLIC_URL"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		BatchFile: envOrDefault("BATCH_FILE", "advanced_designs.json"),
	}

	if cfg.ObjectStoreURL == "" {
		return nil, fmt.Errorf("OBJECT_STORE_URL must be set")
	}
	if cfg.ObjectStoreServiceKey == "" {
		return nil, fmt.Errorf("OBJECT_STORE_SERVICE_KEY must be set")
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// CacheEnabled reports whether the Valkey fingerprint cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.ValkeyHost != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
