package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the API.
type Config struct {
	AppPort         string
	DBDriver        string
	DatabaseDSN     string
	LogLevel        string
	SeedCategories  bool
	ShutdownTimeout time.Duration
}

// Load reads configuration from defaults, an optional config.yaml and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "file:lanchonete.db?_foreign_keys=1")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_SEED_CATEGORIES", true)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	v.AutomaticEnv()

	cfg := &Config{
		AppPort:         v.GetString("APP_PORT"),
		DBDriver:        v.GetString("DB_DRIVER"),
		DatabaseDSN:     v.GetString("DATABASE_DSN"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		SeedCategories:  v.GetBool("DB_SEED_CATEGORIES"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
	switch cfg.DBDriver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or postgres)", cfg.DBDriver)
	}
	return cfg, nil
}
