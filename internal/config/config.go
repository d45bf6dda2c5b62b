package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	DBPath     string
	Enrichment EnrichmentConfig
}

// EnrichmentConfig holds the dictionary provider settings. An empty APIKey
// is a valid state: the coordinator skips enrichment entirely.
type EnrichmentConfig struct {
	APIURL     string
	APIKey     string
	BatchSize  int
	RatePerSec float64
}

// Configured reports whether a provider credential is present.
func (c EnrichmentConfig) Configured() bool {
	return c.APIKey != ""
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		DBPath: getEnv("DB_PATH", "lexitrain.db"),
		Enrichment: EnrichmentConfig{
			APIURL: getEnv("DICT_API_URL", "https://api.dictionaryapi.dev/api/v2/entries/en"),
			APIKey: os.Getenv("DICT_API_KEY"),
		},
	}

	batchSize, err := getEnvInt("ENRICH_BATCH_SIZE", 6)
	if err != nil {
		return nil, err
	}
	cfg.Enrichment.BatchSize = batchSize

	ratePerSec, err := getEnvFloat("ENRICH_RATE_PER_SEC", 4)
	if err != nil {
		return nil, err
	}
	cfg.Enrichment.RatePerSec = ratePerSec

	if cfg.DBPath == "" {
		return nil, fmt.Errorf("DB_PATH cannot be empty")
	}
	if cfg.Enrichment.BatchSize <= 0 {
		return nil, fmt.Errorf("ENRICH_BATCH_SIZE must be positive")
	}
	if cfg.Enrichment.RatePerSec <= 0 {
		return nil, fmt.Errorf("ENRICH_RATE_PER_SEC must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
