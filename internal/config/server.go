package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds the HTTP API settings, read from the environment.
type ServerConfig struct {
	Addr         string        `env:"FIREPLAN_ADDR" envDefault:":8080"`
	ReadTimeout  time.Duration `env:"FIREPLAN_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"FIREPLAN_WRITE_TIMEOUT" envDefault:"30s"`
	MaxBodyBytes int           `env:"FIREPLAN_MAX_BODY_BYTES" envDefault:"1048576"`
	OTelEndpoint string        `env:"FIREPLAN_OTEL_ENDPOINT"`
	OTelEnabled  bool          `env:"FIREPLAN_OTEL_ENABLED" envDefault:"true"`
}

// LoadServerConfig loads the server configuration from environment variables.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxBodyBytes <= 0 {
		return ServerConfig{}, fmt.Errorf("FIREPLAN_MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	return cfg, nil
}
