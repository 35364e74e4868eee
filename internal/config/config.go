package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the CLI-level configuration stored in the data directory. The
// store core never reads it; the command surface resolves the todo file
// path and default space once and injects them.
type Config struct {
	// File overrides the todo file path (default: todos.md in the data dir).
	File string `yaml:"file,omitempty"`
	// DefaultSpace applies when no -s flag or repo-local space link does.
	DefaultSpace string `yaml:"default_space,omitempty"`
}

func Load(dataDir string) (*Config, error) {
	path := filepath.Join(dataDir, "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func Save(dataDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(filepath.Join(dataDir, "config.yaml"), data, 0644)
}
