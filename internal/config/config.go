// Package config loads unitconv defaults from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds defaults that command-line flags may override.
type Config struct {
	// Format is the output format, "text" or "json".
	Format string `env:"UNITCONV_FORMAT" envDefault:"text"`

	// History is the history backend for new sessions, "memory" or "sqlite".
	History string `env:"UNITCONV_HISTORY" envDefault:"memory"`

	// Verbose enables diagnostic output on stderr.
	Verbose bool `env:"UNITCONV_VERBOSE" envDefault:"false"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFrom reads Config from the given variables instead of the process
// environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
