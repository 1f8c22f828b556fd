// Package config loads runtime configuration from a .env file and the
// environment.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the storefront client and the
// development stub server.
type Config struct {
	APIBaseURL      string        `envconfig:"API_BASE_URL" default:"http://localhost:8000"`
	HTTPTimeout     time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	SessionBackend  string        `envconfig:"SESSION_BACKEND" default:"file"`
	SessionDir      string        `envconfig:"SESSION_DIR" default:".guitarhub"`
	RedisURL        string        `envconfig:"REDIS_URL" default:"redis://localhost:6379"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	StubAddr        string        `envconfig:"STUB_ADDR" default:":8000"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads .env when present, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
