// Package config loads server settings from environment variables.
// Flags passed on the command line always win; the environment fills in the
// rest, which is how container deployments of `solid serve` are configured.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Server holds the settings shared by the HTTP and MCP server commands.
type Server struct {
	Port     string `env:"SOLID_PORT" envDefault:"8080"`
	RedisURL string `env:"SOLID_REDIS_URL"`
	Store    string `env:"SOLID_STORE" envDefault:"file"`
	Reader   string `env:"SOLID_READER"`
	Debug    bool   `env:"SOLID_DEBUG"`
}

// FromEnv parses the server configuration from the environment.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
