package main

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/signadot/enbt/input"
	"github.com/signadot/enbt/nbt"
)

const defaultOutput = "servers.dat"

// envConfig holds the defaults that may be set in the environment.
// Command line options take precedence.
type envConfig struct {
	Output   string `env:"ENBT_OUTPUT"    envDefault:"servers.dat"`
	Format   string `env:"ENBT_FORMAT"`
	MaxDepth int    `env:"ENBT_MAX_DEPTH"`
	NoRepair bool   `env:"ENBT_NO_REPAIR"`
}

// envDefaults returns a Config initialised from environ, or from the
// process environment when environ is nil.
func envDefaults(environ map[string]string) (*Config, error) {
	var ec envConfig
	if err := env.ParseWithOptions(&ec, env.Options{Environment: environ}); err != nil {
		return nil, err
	}
	cfg := &Config{
		Output:   ec.Output,
		MaxDepth: ec.MaxDepth,
		NoRepair: ec.NoRepair,
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = nbt.DefaultMaxDepth
	}
	if ec.Format != "" {
		f, err := input.ParseFormat(ec.Format)
		if err != nil {
			return nil, fmt.Errorf("ENBT_FORMAT: %w", err)
		}
		cfg.Format = &f
	}
	return cfg, nil
}
