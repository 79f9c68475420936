// Package config loads visualizer settings from a YAML file. Settings
// start from defaults so a missing or partial config file still yields
// a runnable setup.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WindowConfig defines the OS window.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// Config holds all visualizer settings.
type Config struct {
	Window    WindowConfig `yaml:"window"`
	ScenePath string       `yaml:"scene"`     // empty means the embedded default scene
	CellSize  int          `yaml:"cell_size"` // pixels per grid cell
	MaxSteps  int          `yaml:"max_steps"` // ray walk budget per frame
	Telemetry bool         `yaml:"telemetry"` // enable OTLP trace export
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     960,
			Height:    960,
			Title:     "gridcast",
			Resizable: true,
		},
		CellSize: 96,
		MaxSteps: 64,
	}
}

// Load reads config from a YAML file, overlaying it on the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// validate checks if the config values are usable.
func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.CellSize <= 0 {
		return fmt.Errorf("invalid cell size: %d", c.CellSize)
	}

	if c.MaxSteps <= 0 {
		return fmt.Errorf("invalid max steps: %d", c.MaxSteps)
	}

	return nil
}
