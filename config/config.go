// Package config loads gradebook settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Session owner
	Professor ProfessorConfig

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string      `env:"APP_NAME" envDefault:"gradebook"`
	Environment Environment `env:"APP_ENV" envDefault:"development"`
	Version     string      `env:"APP_VERSION" envDefault:"0.1.0"`
}

// ProfessorConfig identifies the professor who owns the session.
type ProfessorConfig struct {
	ID   string `env:"PROFESSOR_ID" envDefault:"P001"`
	Name string `env:"PROFESSOR_NAME" envDefault:"Dr. Albus Dumbledore"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	// Logging goes to stderr; the menu owns stdout.
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"` // debug, info, warn, error
	LogCaller bool   `env:"LOG_CALLER" envDefault:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	return LoadFrom(nil)
}

// LoadFrom loads configuration from the given variables instead of the
// process environment. A nil map reads the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	cfg := &Config{}

	opts := env.Options{}
	if vars != nil {
		opts.Environment = vars
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	switch c.App.Environment {
	case EnvDevelopment, EnvStaging, EnvProduction:
	default:
		errs = append(errs, fmt.Sprintf("APP_ENV must be one of development, staging, production (got %q)", c.App.Environment))
	}

	if strings.TrimSpace(c.Professor.ID) == "" {
		errs = append(errs, "PROFESSOR_ID must not be blank")
	}
	if strings.TrimSpace(c.Professor.Name) == "" {
		errs = append(errs, "PROFESSOR_NAME must not be blank")
	}

	switch strings.ToLower(strings.TrimSpace(c.Observability.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("LOG_LEVEL must be debug, info, warn or error (got %q)", c.Observability.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
