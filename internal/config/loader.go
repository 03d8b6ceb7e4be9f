package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "chase.yaml"

// Source names where a configuration was loaded from.
const (
	SourceEmbedded = "embedded default"
	SourceBuiltin  = "built-in default"
)

// Load loads the chase configuration and reports where it came from.
// Search order: customPath -> ~/.chase/configs/chase.yaml -> ./configs/chase.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (ChaseConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{UserConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg := DefaultChaseConfig()
	if err := yaml.Unmarshal(defaultChaseYAML, &cfg); err != nil {
		return DefaultChaseConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// loadFile decodes one configuration file over the defaults.
func loadFile(path string) (ChaseConfig, error) {
	cfg := DefaultChaseConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// HomeDir returns ~/.chase, or empty if the home directory is unavailable.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chase")
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	dir := HomeDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}
