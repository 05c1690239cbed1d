package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Env holds settings read from the environment. Non-empty values override
// the configuration file.
type Env struct {
	Base     string `env:"OWBRULES_BASE"`
	Format   string `env:"OWBRULES_FORMAT"`
	Color    string `env:"OWBRULES_COLOR"`
	BaseURL  string `env:"OWBRULES_BASE_URL"`
	MaxHops  int    `env:"OWBRULES_MAX_HOPS"`
	LogLevel string `env:"OWBRULES_LOG_LEVEL" envDefault:"warn"`
}

// ParseEnv reads Env from environ, or from the process environment when
// environ is nil.
func ParseEnv(environ map[string]string) (*Env, error) {
	var e Env
	var err error
	if environ == nil {
		err = env.Parse(&e)
	} else {
		err = env.ParseWithOptions(&e, env.Options{Environment: environ})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &e, nil
}

// ApplyEnv overrides configuration values with those set in e and validates
// the result.
func (c *Config) ApplyEnv(e *Env) error {
	if e == nil {
		return nil
	}

	if e.Base != "" {
		// environment paths are relative to the working directory
		base, err := filepath.Abs(e.Base)
		if err != nil {
			return fmt.Errorf("failed to resolve OWBRULES_BASE: %w", err)
		}
		c.Tables = &TablesConfig{Base: base}
	}
	if c.Output == nil {
		c.Output = &OutputConfig{}
	}
	if e.Format != "" {
		c.Output.Format = e.Format
	}
	if e.Color != "" {
		c.Output.Color = e.Color
	}
	if e.BaseURL != "" {
		baseURL := e.BaseURL
		c.Output.BaseURL = &baseURL
	}
	if e.MaxHops != 0 {
		maxHops := e.MaxHops
		if c.Resolver == nil {
			c.Resolver = &ResolverConfig{}
		}
		c.Resolver.MaxHops = &maxHops
	}

	return Validate(c)
}
