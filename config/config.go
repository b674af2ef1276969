// Package config handles intcode.toml configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents an intcode.toml file.
type Config struct {
	Log     Log     `toml:"log"`
	Gravity Gravity `toml:"gravity"`
	Search  Search  `toml:"search"`
}

type Log struct {
	Level   string `toml:"level"`
	Modules string `toml:"modules"`
}

// Gravity holds the day 2 puzzle parameters.
type Gravity struct {
	Noun   int32 `toml:"noun"`
	Verb   int32 `toml:"verb"`
	Target int32 `toml:"target"`
}

type Search struct {
	Limit   int32 `toml:"limit"`
	Workers int   `toml:"workers"`
}

func Default() Config {
	return Config{
		Log: Log{Level: "warn"},
		Gravity: Gravity{
			Noun:   12,
			Verb:   2,
			Target: 19690720,
		},
		Search: Search{
			Limit:   100,
			Workers: 1,
		},
	}
}

// Load parses the file at path over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Search.Limit <= 0 {
		errs = append(errs, fmt.Errorf("search.limit must be positive, got %d", c.Search.Limit))
	}
	if c.Search.Workers < 1 {
		errs = append(errs, fmt.Errorf("search.workers must be at least 1, got %d", c.Search.Workers))
	}
	if c.Gravity.Noun < 0 || c.Gravity.Verb < 0 {
		errs = append(errs, fmt.Errorf("gravity noun and verb must not be negative"))
	}
	return errors.Join(errs...)
}
