// Package models defines data structures for configuration and operation options.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds overridable defaults for the CLI commands. All values can be
// set in an optional pdftools.yaml; explicit CLI flags always win over
// config values.
type Config struct {
	// Extraction thresholds in pixels.
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`

	// Rotation default direction (clockwise/anticlockwise or a synonym).
	Direction string `yaml:"direction"`

	// Compression defaults.
	Compression string `yaml:"compression"`
	Quality     int    `yaml:"quality"`
	MaxWidth    int    `yaml:"max_width"`
	MaxHeight   int    `yaml:"max_height"`
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		MinWidth:    50,
		MinHeight:   50,
		Direction:   "anticlockwise",
		Compression: "medium",
		Quality:     30,
		MaxWidth:    1200,
		MaxHeight:   1600,
	}
}

// LoadConfig reads a YAML config file and merges it over the defaults.
// A missing file is not an error; the defaults are returned unchanged.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return config, nil
}
