// Package config loads application configuration from the environment,
// with an optional .env file for local runs.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all application settings.
type Config struct {
	// Addr is the listen address for the local server.
	Addr string `env:"ADDR" env-default:":8080"`

	// DBPath is the SQLite database file backing the store.
	DBPath string `env:"DB_PATH" env-default:"./data/dahood.db"`

	// StaticPath is the directory of the browser UI assets.
	StaticPath string `env:"STATIC_PATH" env-default:"./static"`

	// AdminUsername and AdminPassword form the distinguished login pair
	// that bypasses normal lookup and may broadcast and upload slides.
	AdminUsername string `env:"ADMIN_USERNAME" env-default:"hare1111"`
	AdminPassword string `env:"ADMIN_PASSWORD" env-default:"himgjo@123"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from a .env file (when present) and the
// environment.
func Load() (*Config, error) {
	// Missing .env just means everything comes from the environment.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return &cfg, nil
}
