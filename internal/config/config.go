// Package config provides configuration loading for the curator CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the CLI.
type Config struct {
	// DataDir is where the substrate lives. Defaults to ~/.curator.
	DataDir string `yaml:"data_dir"`

	// Backend selects the substrate adapter: file, bolt, sqlite or memory.
	Backend string `yaml:"backend"`

	// UpcomingDays is the default window for the upcoming-reminders listing.
	UpcomingDays int `yaml:"upcoming_days"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		DataDir:      defaultDataDir(),
		Backend:      "file",
		UpcomingDays: 7,
	}
}

// Load reads and parses the config file at path and applies defaults for
// unset fields. A missing file yields the defaults, not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = defaultDataDir()
	}
	if cfg.Backend == "" {
		cfg.Backend = "file"
	}
	if cfg.UpcomingDays <= 0 {
		cfg.UpcomingDays = 7
	}
	return cfg, nil
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "curator.yaml"
	}
	return filepath.Join(home, ".curator", "config.yaml")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".curator"
	}
	return filepath.Join(home, ".curator", "data")
}
