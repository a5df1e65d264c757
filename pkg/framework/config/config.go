// Package config loads the bundle configuration that describes a plugin and
// the adapter features compiled into it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/justyntemme/lv2go/pkg/framework/debug"
	"github.com/justyntemme/lv2go/pkg/framework/plugin"
)

// Validation modes
const (
	ValidationStrict  = "strict"
	ValidationRelaxed = "relaxed"
)

// Config represents the bundle configuration
type Config struct {
	// Plugin metadata written to the descriptor
	Plugin plugin.Info `yaml:"plugin"`

	// Optional ports
	Features FeatureConfig `yaml:"features"`

	// Shape checks applied at instantiation: strict or relaxed
	Validation string `yaml:"validation"`

	// Logging settings
	Log LogConfig `yaml:"log"`
}

// FeatureConfig selects the optional ports of the port table
type FeatureConfig struct {
	FreeWheel bool `yaml:"freewheel"`
	Latency   bool `yaml:"latency"`
}

// LogConfig represents logging settings
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`

	// Profile times every run call; the statistics are logged on deactivate
	Profile bool `yaml:"profile,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Features: FeatureConfig{
			FreeWheel: true,
			Latency:   true,
		},
		Validation: ValidationStrict,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustParse is Parse for embedded configuration; it panics on error.
func MustParse(data []byte) *Config {
	cfg, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// SaveConfig saves configuration to file
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	switch c.Validation {
	case ValidationStrict, ValidationRelaxed:
	case "":
		c.Validation = ValidationStrict
	default:
		return fmt.Errorf("unknown validation mode: %s", c.Validation)
	}

	if _, err := debug.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// Relaxed reports whether shape checks are skipped.
func (c *Config) Relaxed() bool {
	return c.Validation == ValidationRelaxed
}

// ApplyLogging configures the default logger from the log section.
func (c *Config) ApplyLogging() error {
	level, err := debug.ParseLevel(c.Log.Level)
	if err != nil {
		return err
	}

	if c.Log.File != "" {
		logger, err := debug.NewFileLogger(c.Log.File, debug.Default().Prefix(), debug.DefaultFlags)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		debug.SetDefault(logger)
	}

	debug.SetLevel(level)
	debug.DefaultProfiler.SetEnabled(c.Log.Profile)
	return nil
}
