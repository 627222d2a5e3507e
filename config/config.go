// Package config loads proofpad's optional YAML configuration file.
// Flags override file values; the file overrides built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultTickIntervalMS is the reveal cadence in milliseconds.
const DefaultTickIntervalMS = 20

// Config holds user-tunable settings.
type Config struct {
	// Provider selects the answering service: "deepseek" or "gemini".
	// Empty means auto-detect from available API keys.
	Provider string `yaml:"provider"`
	// Model is the model label sent with each request.
	Model string `yaml:"model"`
	// BaseURL overrides the DeepSeek-compatible endpoint, e.g. for an
	// OpenAI-compatible relay serving the gpt-5 label.
	BaseURL string `yaml:"base_url"`
	// TickIntervalMS is the reveal cadence in milliseconds.
	TickIntervalMS int `yaml:"tick_interval_ms"`
	// LogFile is the debug log path. Empty uses the default under the
	// config directory.
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{TickIntervalMS: DefaultTickIntervalMS}
}

// DefaultPath returns the default config file location,
// ~/.proofpad/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".proofpad", "config.yaml")
}

// Load reads the config file at path, layered over Default. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.TickIntervalMS <= 0 {
		cfg.TickIntervalMS = DefaultTickIntervalMS
	}
	return cfg, nil
}
