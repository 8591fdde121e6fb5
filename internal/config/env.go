package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env is the process configuration of the curvekit binaries.
type Env struct {
	HTTPAddr      string        `env:"CURVEKIT_HTTP_ADDR" envDefault:":8080"`
	GRPCAddr      string        `env:"CURVEKIT_GRPC_ADDR" envDefault:":9090"`
	ConfigDir     string        `env:"CURVEKIT_CONFIG_DIR"`
	Profile       string        `env:"CURVEKIT_PROFILE"`
	Seed          uint64        `env:"CURVEKIT_SEED"` // 0 = crypto RNG
	WatchInterval time.Duration `env:"CURVEKIT_WATCH_INTERVAL" envDefault:"2s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	if e.WatchInterval <= 0 {
		return Env{}, fmt.Errorf("parse env: CURVEKIT_WATCH_INTERVAL must be > 0, got %s", e.WatchInterval)
	}
	return e, nil
}
