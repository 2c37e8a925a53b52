package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is internally consistent and
// that the engine tuning values are usable.
func ValidateConfig(cfg *Config) error {
	var errors []string

	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		errors = append(errors, fmt.Sprintf("DB_DRIVER must be postgres or sqlite, got %q", cfg.DBDriver))
	}

	switch cfg.SessionBackend {
	case "memory", "redis":
	default:
		errors = append(errors, fmt.Sprintf("SESSION_BACKEND must be memory or redis, got %q", cfg.SessionBackend))
	}

	if cfg.MaxSessionMemory <= 0 {
		errors = append(errors, "MAX_SESSION_MEMORY must be positive")
	}
	if cfg.SearchLimitCeiling <= 0 {
		errors = append(errors, "SEARCH_LIMIT_CEILING must be positive")
	}
	if cfg.DefaultSearchLimit <= 0 {
		errors = append(errors, "DEFAULT_SEARCH_LIMIT must be positive")
	}
	if cfg.DefaultSearchLimit > cfg.SearchLimitCeiling {
		errors = append(errors, "DEFAULT_SEARCH_LIMIT must not exceed SEARCH_LIMIT_CEILING")
	}
	if cfg.RetrievalTimeout <= 0 {
		errors = append(errors, "RETRIEVAL_TIMEOUT_SECONDS must be positive")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
