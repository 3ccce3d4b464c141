// Package config loads CLI settings with layered precedence.
//
// Sources, highest precedence first:
//  1. Command-line flags (bound by the cli package)
//  2. Environment variables (SCHNORR_* prefix, e.g. SCHNORR_OUTPUT, SCHNORR_LOG_FILE)
//  3. The YAML file given with --config
//  4. Built-in defaults
package config

import (
	"errors"
	"fmt"
	"slices"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// ErrInvalidOutputFormat indicates an unsupported output format.
var ErrInvalidOutputFormat = errors.New("invalid output format")

// Config is the root configuration.
type Config struct {
	// Output selects how results are printed (text, json or yaml).
	Output string `yaml:"output" mapstructure:"output"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// Quiet limits logging to warnings and errors.
	Quiet bool `yaml:"quiet" mapstructure:"quiet"`

	// Log configures the optional log file.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// LogConfig configures the rotated log file.
type LogConfig struct {
	// File is the log file path. Empty disables file logging.
	File string `yaml:"file" mapstructure:"file"`

	// MaxSizeMB is the size at which the file is rotated.
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxBackups is the number of rotated files kept.
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups"`
}

// ValidOutputFormats lists the accepted output formats.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON, OutputYAML}
}

// Validate checks cfg for unsupported values.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if !slices.Contains(ValidOutputFormats(), cfg.Output) {
		return fmt.Errorf("%w: %q must be one of %v", ErrInvalidOutputFormat, cfg.Output, ValidOutputFormats())
	}
	if cfg.Verbose && cfg.Quiet {
		return errors.New("verbose and quiet are mutually exclusive")
	}
	if cfg.Log.MaxSizeMB < 0 || cfg.Log.MaxBackups < 0 {
		return errors.New("log rotation limits must not be negative")
	}
	return nil
}
