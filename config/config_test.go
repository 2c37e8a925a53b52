package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "memory", cfg.SessionBackend)
	assert.Equal(t, 50, cfg.MaxSessionMemory)
	assert.Equal(t, 100, cfg.SearchLimitCeiling)
	assert.Equal(t, 10, cfg.DefaultSearchLimit)
	assert.Equal(t, 5*time.Second, cfg.RetrievalTimeout)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SESSION_BACKEND", "redis")
	t.Setenv("MAX_SESSION_MEMORY", "25")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "redis", cfg.SessionBackend)
	assert.Equal(t, 25, cfg.MaxSessionMemory)
}

func TestLoadConfigRejectsBadInt(t *testing.T) {
	t.Setenv("MAX_SESSION_MEMORY", "lots")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateConfigRejectsBadValues(t *testing.T) {
	cfg := &Config{
		DBDriver:           "mysql",
		SessionBackend:     "memory",
		MaxSessionMemory:   50,
		SearchLimitCeiling: 100,
		DefaultSearchLimit: 10,
		RetrievalTimeout:   time.Second,
	}
	assert.Error(t, ValidateConfig(cfg))

	cfg.DBDriver = "postgres"
	cfg.DefaultSearchLimit = 200
	assert.Error(t, ValidateConfig(cfg))

	cfg.DefaultSearchLimit = 10
	assert.NoError(t, ValidateConfig(cfg))
}
