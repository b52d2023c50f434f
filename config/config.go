package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the server configuration, populated from the environment.
type Config struct {
	Addr          string `env:"SKYFALL_ADDR" envDefault:":8080"`
	Env           string `env:"SKYFALL_ENV" envDefault:"development"`
	LogLevel      string `env:"SKYFALL_LOG_LEVEL" envDefault:"info"`
	AllowedOrigin string `env:"SKYFALL_ALLOWED_ORIGIN" envDefault:"*"`
}

// Load reads an optional .env file, then parses the environment. A missing
// .env file is only an error outside development.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
