package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the server configuration, loaded from the environment.
type Config struct {
	Env           string `env:"INVESTIGATOR_ENV" envDefault:"local"`
	Addr          string `env:"INVESTIGATOR_ADDR" envDefault:":8080"`
	DBPath        string `env:"INVESTIGATOR_DB_PATH" envDefault:"investigator.db"`
	DefaultSystem string `env:"INVESTIGATOR_DEFAULT_SYSTEM" envDefault:"coc6"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads a .env file when present and parses the server configuration
// from the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
