package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string // postgres or sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string // sqlite only

	// Redis configuration
	RedisHost      string
	RedisPort      string
	RedisPassword  string
	RedisDB        int
	SessionBackend string // memory or redis

	// Search engine tuning
	MaxSessionMemory   int
	SearchLimitCeiling int
	DefaultSearchLimit int
	RetrievalTimeout   time.Duration
}

// LoadConfig creates a Config from environment variables with defaults,
// then validates it.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "recipes"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),
		DBPath:     getEnv("DB_PATH", "recipes.db"),

		RedisHost:      getEnv("REDIS_HOST", "localhost"),
		RedisPort:      getEnv("REDIS_PORT", "6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		SessionBackend: getEnv("SESSION_BACKEND", "memory"),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.MaxSessionMemory, err = getEnvInt("MAX_SESSION_MEMORY", 50); err != nil {
		return nil, err
	}
	if cfg.SearchLimitCeiling, err = getEnvInt("SEARCH_LIMIT_CEILING", 100); err != nil {
		return nil, err
	}
	if cfg.DefaultSearchLimit, err = getEnvInt("DEFAULT_SEARCH_LIMIT", 10); err != nil {
		return nil, err
	}

	timeoutSecs, err := getEnvInt("RETRIEVAL_TIMEOUT_SECONDS", 5)
	if err != nil {
		return nil, err
	}
	cfg.RetrievalTimeout = time.Duration(timeoutSecs) * time.Second

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q", key, value)
	}
	return n, nil
}
