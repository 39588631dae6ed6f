package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// DefaultDatabasePath is where the on-device store lives unless overridden.
const DefaultDatabasePath = "one_portfolio.db"

// Config holds application configuration
type Config struct {
	// Env selects the logger encoding ("production" for JSON).
	Env string

	// DatabasePath is the SQLite file backing the store.
	DatabasePath string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:          getEnv("ENV", "development"),
		DatabasePath: getEnv("DB_PATH", DefaultDatabasePath),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
