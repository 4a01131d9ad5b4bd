// Package config loads client settings from the environment with an
// optional YAML overlay at ~/.plx/config.yaml. Environment variables
// win over the file so one-off overrides stay simple.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/plannerx/plx/internal/api"
)

// Config holds all runtime configuration for the plx client
type Config struct {
	// APIURL is the Planner X API origin
	APIURL string `env:"PLX_API_URL" yaml:"api_url"`

	// Email and Password feed non-interactive logins. The password is
	// never read from the file, only from the environment or flags.
	Email    string `env:"PLX_EMAIL" yaml:"email"`
	Password string `env:"PLX_PASSWORD" yaml:"-"`

	// Logging
	LogLevel  string `env:"PLX_LOG_LEVEL" yaml:"log_level"`
	LogFormat string `env:"PLX_LOG_FORMAT" yaml:"log_format"`
}

// Path returns the location of the optional config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".plx", "config.yaml"), nil
}

// Load builds the configuration: YAML file first (if present), then
// environment variables on top, then code-level defaults for anything
// still unset.
func Load() (*Config, error) {
	cfg := &Config{}

	if path, err := Path(); err == nil {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if cfg.APIURL == "" {
		cfg.APIURL = api.DefaultBaseURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	return cfg, nil
}
