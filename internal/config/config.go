// Package config handles the user-level configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSeed is used when neither the config file nor the command line
// provides one.
const DefaultSeed = 42

// Config represents the flat configuration stored in
// ~/.nusuk/config.json. Every field is optional; zero values fall back
// to the built-in defaults.
type Config struct {
	Version     string         `json:"version,omitempty"`
	DatasetPath string         `json:"dataset_path,omitempty"` // snapshot file location
	DefaultSeed int64          `json:"default_seed,omitempty"`
	ListenAddr  string         `json:"listen_addr,omitempty"` // serve command bind address
	Counts      map[string]int `json:"counts,omitempty"`      // per-type population overrides
}

// configPath returns the location of the config file under the given
// home directory.
func configPath(home string) string {
	return filepath.Join(home, ".nusuk", "config.json")
}

// LoadConfig reads ~/.nusuk/config.json. A missing file is not an
// error: it yields an empty config so every field falls back to its
// default.
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return loadFrom(configPath(home))
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// SaveConfig writes the config to ~/.nusuk/config.json.
func SaveConfig(cfg *Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return saveTo(configPath(home), cfg)
}

func saveTo(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Seed returns the configured default seed, or DefaultSeed when unset.
func (c *Config) Seed() int64 {
	if c.DefaultSeed != 0 {
		return c.DefaultSeed
	}
	return DefaultSeed
}

// Addr returns the configured listen address, or the default.
func (c *Config) Addr() string {
	if c.ListenAddr != "" {
		return c.ListenAddr
	}
	return ":8080"
}
