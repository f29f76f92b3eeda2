// Package config loads user preferences from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user preferences. Zero values mean "use the built-in default".
type Config struct {
	DefaultGas string `yaml:"default_gas,omitempty"`
	Zoomed     bool   `yaml:"zoomed,omitempty"`
	Catalog    string `yaml:"catalog,omitempty"`
	Watch      bool   `yaml:"watch,omitempty"`
	LogFile    string `yaml:"log_file,omitempty"`
	Debug      bool   `yaml:"debug,omitempty"`
}

// DefaultPath returns $XDG_CONFIG_HOME/lelscale/config.yaml (or the
// platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, "lelscale", "config.yaml"), nil
}

// Load reads the config at path. A missing file yields an empty config.
// Relative catalog and log paths are resolved against the config file's
// directory.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	base := filepath.Dir(path)
	cfg.Catalog = resolve(base, cfg.Catalog)
	cfg.LogFile = resolve(base, cfg.LogFile)
	return cfg, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
