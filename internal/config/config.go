// Package config loads process configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/swatter555/leadercorps/internal/store"
)

// Config holds the settings the CLI needs.
type Config struct {
	// DBPath overrides the default database location.
	DBPath string `env:"LEADERCORPS_DB"`

	// InitialReputation is granted to newly created leaders.
	InitialReputation int `env:"LEADERCORPS_INITIAL_REPUTATION" envDefault:"0"`
}

// Load parses configuration from the environment, falling back to the XDG
// database path when none is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = p
	} else if err := store.EnsureDir(cfg.DBPath); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
