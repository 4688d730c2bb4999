// Package config loads and saves the activity configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat scriptsplit configuration.
type Config struct {
	Version string `json:"version"`
	// ScriptVersion selects which example script the deployment fixes.
	ScriptVersion string `json:"script_version,omitempty"`
	// DebounceMs is the validation debounce window in milliseconds.
	DebounceMs int `json:"debounce_ms,omitempty"`
	// ResultsFolder is the folder name expected for unplaced output
	// artifacts.
	ResultsFolder string `json:"results_folder,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version:       "1",
		ScriptVersion: "microscopy-v2",
		DebounceMs:    400,
		ResultsFolder: "results",
	}
}

// LoadConfig reads .scriptsplit/config.json from the specified
// directory. Returns the defaults (not an error) when no config exists.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".scriptsplit", "config.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes config.json to the directory.
func SaveConfig(dir string, cfg *Config) error {
	confDir := filepath.Join(dir, ".scriptsplit")
	if err := os.MkdirAll(confDir, 0755); err != nil {
		return fmt.Errorf("failed to create .scriptsplit dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(confDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// DefaultConfigDir is where the CLI keeps its config: the user's home.
func DefaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return home, nil
}
