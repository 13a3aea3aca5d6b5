// Package config loads the solver configuration from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all solver configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Engine  EngineConfig  `yaml:"engine"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// GridConfig controls how text input becomes a grid.
type GridConfig struct {
	Marker string `yaml:"marker"` // single character denoting a present cell
	Strict bool   `yaml:"strict"` // reject ragged rows instead of padding
}

// EngineConfig controls evaluation.
type EngineConfig struct {
	Workers int `yaml:"workers"` // row bands evaluated concurrently, 1 = sequential
}

// OutputConfig controls result reporting.
type OutputConfig struct {
	Format string `yaml:"format"` // text, json
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console, json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Grid:    GridConfig{Marker: "@"},
		Engine:  EngineConfig{Workers: 1},
		Output:  OutputConfig{Format: "text"},
		Logging: LoggingConfig{Level: "warn", Format: "console"},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("CASCADE_MARKER"); v != "" {
		c.Grid.Marker = v
	}
	if v := os.Getenv("CASCADE_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("CASCADE_WORKERS=%q: %w", v, ErrInvalid)
		}
		c.Engine.Workers = n
	}
	if v := os.Getenv("CASCADE_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if len(c.Grid.Marker) != 1 {
		return fmt.Errorf("grid.marker %q must be a single byte: %w", c.Grid.Marker, ErrInvalid)
	}
	if c.Engine.Workers < 1 {
		return fmt.Errorf("engine.workers %d must be at least 1: %w", c.Engine.Workers, ErrInvalid)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("output.format %q: %w", c.Output.Format, ErrInvalid)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q: %w", c.Logging.Level, ErrInvalid)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q: %w", c.Logging.Format, ErrInvalid)
	}
	return nil
}

// MarkerByte returns the marker as a byte. Validate guarantees it exists.
func (c *Config) MarkerByte() byte {
	if c.Grid.Marker == "" {
		return '@'
	}
	return c.Grid.Marker[0]
}
