package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the defaults of the chroma command. Flags override every field.
type Config struct {
	LogLevel string        `env:"CHROMA_LOG_LEVEL" envDefault:"info"`
	Palette  []string      `env:"CHROMA_PALETTE" envDefault:"red,blue,green" envSeparator:","`
	Format   string        `env:"CHROMA_FORMAT" envDefault:"json"`
	Timeout  time.Duration `env:"CHROMA_TIMEOUT" envDefault:"30s"`
	MaxSteps int           `env:"CHROMA_MAX_STEPS" envDefault:"0"`
	Parallel int           `env:"CHROMA_PARALLEL" envDefault:"1"`
}

// Load reads configuration from the process environment.
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom reads configuration from environ instead of the process environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}
	if c.Format != "json" && c.Format != "yaml" {
		return fmt.Errorf("invalid format: %s (must be json or yaml)", c.Format)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative: %s", c.Timeout)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max steps cannot be negative: %d", c.MaxSteps)
	}
	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1: %d", c.Parallel)
	}

	return nil
}
