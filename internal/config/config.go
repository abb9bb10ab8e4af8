// Package config provides configuration management for the parts finder.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrNoSuppliers            = errors.New("at least one supplier is required")
	ErrSupplierMissingName    = errors.New("supplier name is required")
	ErrSupplierMissingFixture = errors.New("fixture path is required")
	ErrDuplicateSupplierName  = errors.New("supplier names must be unique")
	ErrNoEnabledSuppliers     = errors.New("at least one supplier must be enabled")
	ErrMissingIssuesDir       = errors.New("issues.dir is required when issue reporting is enabled")
	ErrMissingIssuePrefix     = errors.New("issues.prefix is required when issue reporting is enabled")
	ErrInvalidLogLevel        = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete parts finder configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Issues  IssuesConfig  `yaml:"issues"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig contains supplier and presentation settings for a search run.
type SearchConfig struct {
	Suppliers []SupplierConfig `yaml:"suppliers"`
	Output    OutputConfig     `yaml:"output"`
	Parallel  bool             `yaml:"parallel"`
}

// SupplierConfig describes one simulated supplier backend.
type SupplierConfig struct {
	Name    string `yaml:"name"`
	Fixture string `yaml:"fixture"`
	Enabled bool   `yaml:"enabled"`
}

// OutputConfig defines presentation behaviour.
type OutputConfig struct {
	ShowCosts      bool `yaml:"show_costs"`
	MaxDescription int  `yaml:"max_description"`
}

// IssuesConfig defines where issue reports are written.
type IssuesConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
	Prefix  string `yaml:"prefix"`
}

// LoggingConfig defines logging behaviour.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load loads configuration from a YAML file.
func Load(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is present:
// the two demo suppliers against the bundled fixtures.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			Suppliers: []SupplierConfig{
				{Name: "AutoParts Direct", Fixture: "data/supplier_a_demo.json", Enabled: true},
				{Name: "PartsHub Pro", Fixture: "data/supplier_b_demo.json", Enabled: true},
			},
		},
		Issues: IssuesConfig{
			Enabled: true,
			Dir:     "issues",
			Prefix:  "demo",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Search.Suppliers) == 0 {
		return ErrNoSuppliers
	}

	enabledCount := 0
	seen := make(map[string]bool, len(c.Search.Suppliers))

	for i, s := range c.Search.Suppliers {
		if s.Name == "" {
			return fmt.Errorf("%w: supplier[%d]", ErrSupplierMissingName, i)
		}

		if s.Fixture == "" {
			return fmt.Errorf("%w: supplier[%d]", ErrSupplierMissingFixture, i)
		}

		if seen[s.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateSupplierName, s.Name)
		}
		seen[s.Name] = true

		if s.Enabled {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledSuppliers
	}

	if c.Issues.Enabled {
		if c.Issues.Dir == "" {
			return ErrMissingIssuesDir
		}

		if c.Issues.Prefix == "" {
			return ErrMissingIssuePrefix
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// EnabledSuppliers returns only enabled suppliers, in declaration order.
func (c *Config) EnabledSuppliers() []SupplierConfig {
	var enabled []SupplierConfig

	for _, s := range c.Search.Suppliers {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}

	return enabled
}

// SupplierByName returns the supplier with the given name, or false when the
// configuration does not know it.
func (c *Config) SupplierByName(name string) (SupplierConfig, bool) {
	for _, s := range c.Search.Suppliers {
		if s.Name == name {
			return s, true
		}
	}

	return SupplierConfig{}, false
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Suppliers: %d, Parallel: %t, Issues: %s}",
		len(c.Search.Suppliers),
		c.Search.Parallel,
		c.Issues.Dir,
	)
}
