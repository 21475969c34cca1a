package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// TMDB
	TMDBAPIKey  string
	TMDBBaseURL string

	// Translation model endpoint
	TranslateURL string

	// Display
	Language             string // catalog/display language (default: ru)
	ItemsPerPage         int    // results per page (default: 10)
	MaxDescriptionLength int    // synopsis truncation in summary view (default: 200)

	// Caching
	CacheExpirationSeconds int // TTL for both cache tiers (default: 3600)

	// Gateway
	APIRateLimit int // concurrent outbound call permits (default: 20)

	// Server
	ServerPort string

	// Paths
	CacheFile string // $CONFIG_DIR/kinobot.db

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Setup viper FIRST to load .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Load .env file if it exists (ignore if not found)
	_ = viper.ReadInConfig()

	// Set defaults
	viper.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	viper.SetDefault("TRANSLATE_URL", "http://localhost:5000/translate")
	viper.SetDefault("LANGUAGE", "ru")
	viper.SetDefault("ITEMS_PER_PAGE", 10)
	viper.SetDefault("MAX_DESCRIPTION_LENGTH", 200)
	viper.SetDefault("CACHE_EXPIRATION_SECONDS", 3600)
	viper.SetDefault("API_RATE_LIMIT", 20)
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")

	// NOW read CONFIG_DIR from viper (which has loaded .env file)
	configDir := viper.GetString("CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "kinobot")
	} else {
		// Convert relative path to absolute path
		absPath, err := filepath.Abs(configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for CONFIG_DIR: %w", err)
		}
		configDir = absPath
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config := &Config{
		TMDBAPIKey:  viper.GetString("TMDB_API_KEY"),
		TMDBBaseURL: viper.GetString("TMDB_BASE_URL"),

		TranslateURL: viper.GetString("TRANSLATE_URL"),

		Language:             viper.GetString("LANGUAGE"),
		ItemsPerPage:         viper.GetInt("ITEMS_PER_PAGE"),
		MaxDescriptionLength: viper.GetInt("MAX_DESCRIPTION_LENGTH"),

		CacheExpirationSeconds: viper.GetInt("CACHE_EXPIRATION_SECONDS"),

		APIRateLimit: viper.GetInt("API_RATE_LIMIT"),

		ServerPort: viper.GetString("SERVER_PORT"),

		CacheFile: filepath.Join(configDir, "kinobot.db"),

		LogLevel: viper.GetString("LOG_LEVEL"),
	}

	// Validate required fields
	if config.TMDBAPIKey == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is required")
	}
	if config.ItemsPerPage <= 0 {
		return nil, fmt.Errorf("ITEMS_PER_PAGE must be positive")
	}
	if config.APIRateLimit <= 0 {
		return nil, fmt.Errorf("API_RATE_LIMIT must be positive")
	}

	return config, nil
}
