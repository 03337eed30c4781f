// Package config loads server settings from the environment. A .env file
// in the working directory is honored via godotenv's autoload.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	_ "github.com/joho/godotenv/autoload"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

// Config is the complete server configuration.
type Config struct {
	// Env selects the logging profile: dev, prod, or local.
	Env string `env:"TASKWELL_ENV" env-default:"prod"`
	// Seed controls whether the store starts with the sample workspace.
	Seed bool `env:"TASKWELL_SEED" env-default:"true"`
	// ServerName is reported to clients during the MCP handshake.
	ServerName string `env:"TASKWELL_SERVER_NAME" env-default:"taskwell"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	switch cfg.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return nil, fmt.Errorf("unknown env %q: use dev, prod, or local", cfg.Env)
	}
	return cfg, nil
}
