// Package config handles configuration loading and validation for shortid.
package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/shortid/internal/core/validate"
	"github.com/hay-kot/shortid/pkg/randid"
)

// SourceSystem selects the host's secure random generator.
const SourceSystem = "system"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds the application configuration.
type Config struct {
	// Length is the ID length used when --length is not given.
	Length int `json:"length" yaml:"length"`
	// Count is the number of IDs printed per invocation.
	Count int `json:"count" yaml:"count"`
	// Format is the output format (text, json).
	Format string `json:"format" yaml:"format"`
	// Info includes the collision assessment with every ID.
	Info bool `json:"info" yaml:"info"`
	// Template wraps each ID, e.g. "usr_{{ .ID }}". Empty prints the bare ID.
	Template string `json:"template" yaml:"template"`
	// Workers is the number of goroutines used for batch generation.
	Workers int `json:"workers" yaml:"workers"`
	// Source is "system" or the path of a random device such as /dev/urandom.
	Source string `json:"source" yaml:"source"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Length:  randid.DefaultLength,
		Count:   1,
		Format:  FormatText,
		Workers: 1,
		Source:  SourceSystem,
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Length == 0 {
		c.Length = defaults.Length
	}
	if c.Count == 0 {
		c.Count = defaults.Count
	}
	if c.Format == "" {
		c.Format = defaults.Format
	}
	if c.Workers == 0 {
		c.Workers = defaults.Workers
	}
	if c.Source == "" {
		c.Source = defaults.Source
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.Length < randid.MinLength || c.Length > randid.MaxLength {
		errs = errs.Append("length", fmt.Errorf("must be between %d and %d, got %d", randid.MinLength, randid.MaxLength, c.Length))
	}

	if err := validate.Count(c.Count); err != nil {
		errs = errs.Append("count", err)
	}

	if err := validate.Format(c.Format); err != nil {
		errs = errs.Append("format", err)
	}

	if c.Workers < 1 {
		errs = errs.Append("workers", fmt.Errorf("must be at least 1"))
	}

	if c.Source == "" {
		errs = errs.Append("source", fmt.Errorf("cannot be empty"))
	}

	return errs.ToError()
}

// UsesSystemSource reports whether IDs are drawn from the host generator.
func (c *Config) UsesSystemSource() bool {
	return c.Source == SourceSystem
}
