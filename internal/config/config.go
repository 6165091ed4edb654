package config

import (
	"errors"
	"fmt"
	"os"
)

var (
	ErrMissingAPIKey = errors.New("YouTube API key is required")
)

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey string
	// DBPath is the SQLite Cloud connection string; when empty the
	// snapshot cache is disabled.
	DBPath string
	Port   string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	apiKey := os.Getenv("YOUTUBE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingAPIKey)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		YouTubeAPIKey: apiKey,
		DBPath:        os.Getenv("DB_PATH"),
		Port:          port,
	}, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingAPIKey)
	}
	return nil
}
