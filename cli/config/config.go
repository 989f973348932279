// Package config handles CLI configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config represents the CLI configuration.
type Config struct {
	// Kind is the default Chebyshev kind.
	Kind  int         `yaml:"kind"`
	Sweep SweepConfig `yaml:"sweep"`
	Plot  PlotConfig  `yaml:"plot"`
}

// SweepConfig is the default evaluation range of the sweeps.
type SweepConfig struct {
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
	Steps int     `yaml:"steps"`
}

// PlotConfig holds the defaults of the rendered plots.
type PlotConfig struct {
	Dir    string  `yaml:"dir"`
	Width  float64 `yaml:"width"`  // in inches
	Height float64 `yaml:"height"` // in inches
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Kind: 1,
		Sweep: SweepConfig{
			From:  -1,
			To:    1,
			Steps: 16,
		},
		Plot: PlotConfig{
			Dir:    ".",
			Width:  6,
			Height: 4,
		},
	}
}

// DefaultConfigPath returns the default configuration file path for the current platform.
// - macOS/Linux: ~/.polyops/config.yaml
// - Windows: %USERPROFILE%\.polyops\config.yaml
func DefaultConfigPath() string {
	var homeDir string

	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		return "config.yaml"
	}

	return filepath.Join(homeDir, ".polyops", "config.yaml")
}

// LoadConfig loads configuration from the specified path.
// Fields absent from the file keep their default value.
// If the file doesn't exist, returns the default config without error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Kind < 0 {
		return fmt.Errorf("kind must be non-negative but is %d", c.Kind)
	}
	if c.Sweep.Steps < 0 {
		return fmt.Errorf("sweep.steps must be non-negative but is %d", c.Sweep.Steps)
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return fmt.Errorf("plot size must be positive but is %vx%v", c.Plot.Width, c.Plot.Height)
	}
	return nil
}
