package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.SeedCategories)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "host=127.0.0.1 user=postgres dbname=lanchonete sslmode=disable")
	t.Setenv("DB_SEED_CATEGORIES", "false")

	cfg, err := load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Contains(t, cfg.DatabaseDSN, "dbname=lanchonete")
	assert.False(t, cfg.SeedCategories)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_DRIVER", "oracle")

	_, err := load(viper.New())
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
