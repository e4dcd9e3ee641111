package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// OMDb catalog
	OMDbAPIKey  string
	OMDbBaseURL string

	// Inference server for the primary emotion model
	InferenceHost string
	EmotionModel  string

	// Fallback sentiment model
	SentimentPath       string // Path to the anchor VecLite database
	SentimentConfigPath string // Path to veclite.yaml (optional)

	// Catalog detail cache
	CachePath string

	// Recommendations per query when no count is given
	DefaultCount int

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		OMDbAPIKey:          getEnv("OMDB_API_KEY", ""),
		OMDbBaseURL:         getEnv("OMDB_BASE_URL", "http://www.omdbapi.com/"),
		InferenceHost:       getEnv("INFERENCE_HOST", "http://localhost:8089"),
		EmotionModel:        getEnv("EMOTION_MODEL", "bert-base-uncased-emotion"),
		SentimentPath:       getEnv("SENTIMENT_PATH", "data/sentiment.veclite"),
		SentimentConfigPath: getEnv("SENTIMENT_CONFIG_PATH", ""),
		CachePath:           getEnv("CACHE_PATH", "data/cinemood.db"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	count, err := strconv.Atoi(getEnv("DEFAULT_COUNT", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_COUNT: %w", err)
	}
	if count < 1 {
		return nil, fmt.Errorf("invalid DEFAULT_COUNT: must be at least 1")
	}
	cfg.DefaultCount = count

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.CachePath == "" {
		return fmt.Errorf("CACHE_PATH is required")
	}
	return nil
}

// ValidateForCatalog checks configuration needed to reach the movie
// catalog. A missing key is a startup-time fatal condition, not a
// per-request error.
func (c *Config) ValidateForCatalog() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.OMDbAPIKey == "" {
		return fmt.Errorf("OMDB_API_KEY is required")
	}
	if c.OMDbBaseURL == "" {
		return fmt.Errorf("OMDB_BASE_URL is required")
	}
	return nil
}

// ValidateForClassify checks configuration needed for emotion detection.
func (c *Config) ValidateForClassify() error {
	if c.InferenceHost == "" {
		return fmt.Errorf("INFERENCE_HOST is required")
	}
	return nil
}

// ValidateForRecommend checks all configuration needed for a full
// recommendation cycle.
func (c *Config) ValidateForRecommend() error {
	if err := c.ValidateForCatalog(); err != nil {
		return err
	}
	return c.ValidateForClassify()
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
