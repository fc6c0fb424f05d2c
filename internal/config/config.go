package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Source SourceConfig
	Fetch  FetchConfig
	Cache  CacheConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port string
	Host string
}

// SourceConfig identifies the default spreadsheet CSV source
type SourceConfig struct {
	// DataSource is a full CSV export URL or a bare spreadsheet ID.
	DataSource string
}

// FetchConfig tunes the retrying CSV fetcher
type FetchConfig struct {
	Retries     int
	BackoffBase time.Duration
	Timeout     time.Duration
}

// CacheConfig tunes the in-memory last-result cache
type CacheConfig struct {
	TTL time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8085"),
			Host: getEnv("HOST", "0.0.0.0"),
		},
		Source: SourceConfig{
			DataSource: getEnv("DATA_SOURCE", ""),
		},
		Fetch: FetchConfig{
			Retries:     getEnvInt("FETCH_RETRIES", 3),
			BackoffBase: time.Duration(getEnvInt("FETCH_BACKOFF_MS", 1000)) * time.Millisecond,
			Timeout:     time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Cache: CacheConfig{
			TTL: time.Duration(getEnvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		},
	}

	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// ValidateConfig validates that required configuration values are present
func ValidateConfig(config *Config) error {
	if config.Source.DataSource == "" {
		return fmt.Errorf("DATA_SOURCE is required (CSV export URL or spreadsheet ID)")
	}
	if config.Fetch.Retries < 0 {
		return fmt.Errorf("FETCH_RETRIES must not be negative")
	}
	return nil
}

// Helper functions for environment variable access
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
