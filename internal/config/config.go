// SPDX-License-Identifier: MIT

// Package config loads calclineal command configuration from CALCLINEAL_*
// environment variables and command-line flags, flags taking precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/achitoo/CalculadoraLineal/rational"
	"github.com/caarlos0/env/v11"
)

// ErrInvalid is returned when a configuration value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds calclineal command configuration.
type Config struct {
	Worksheet string        `env:"CALCLINEAL_WORKSHEET"`
	Workers   int           `env:"CALCLINEAL_WORKERS"   envDefault:"4"`
	Steps     bool          `env:"CALCLINEAL_STEPS"`
	Tol       string        `env:"CALCLINEAL_TOL"       envDefault:"1e-6"`
	MaxIter   int           `env:"CALCLINEAL_MAX_ITER"  envDefault:"100"`
	Timeout   time.Duration `env:"CALCLINEAL_TIMEOUT"   envDefault:"30s"`
	Verbose   bool          `env:"CALCLINEAL_VERBOSE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig parses the environment, then flags, into a Config.
// The first positional argument, when present, names the worksheet file.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of worksheet tasks run concurrently")
	fs.BoolVar(&cfg.Steps, "steps", cfg.Steps, "include the step-by-step log in the report")
	fs.StringVar(&cfg.Tol, "tol", cfg.Tol, "default root-finding tolerance")
	fs.IntVar(&cfg.MaxIter, "max-iter", cfg.MaxIter, "default root-finding iteration cap")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall time limit (0 disables it)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		cfg.Worksheet = fs.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that flag parsing cannot express.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, c.Workers)
	}
	if c.MaxIter < 1 {
		return fmt.Errorf("%w: max-iter must be >= 1, got %d", ErrInvalid, c.MaxIter)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative, got %s", ErrInvalid, c.Timeout)
	}
	tol, err := rational.Parse(c.Tol)
	if err != nil {
		return fmt.Errorf("%w: tol: %w", ErrInvalid, err)
	}
	if tol.Sign() < 0 {
		return fmt.Errorf("%w: tol must not be negative, got %s", ErrInvalid, c.Tol)
	}
	return nil
}
