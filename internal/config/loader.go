package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMarbles loads the marbles configuration.
// Search order: customPath -> ~/.marbles/configs/marbles.yaml -> ./configs/marbles.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func LoadMarbles(customPath string) (MarblesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MarblesConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseMarbles(data)
		if err != nil {
			return MarblesConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("marbles.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseMarbles(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "marbles.yaml")); err == nil {
		if cfg, err := parseMarbles(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseMarbles(defaultMarblesYAML)
	if err != nil {
		return DefaultMarblesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseMarbles decodes YAML over the hard-coded defaults and validates the result.
func parseMarbles(data []byte) (MarblesConfig, error) {
	cfg := DefaultMarblesConfig()
	// A shapes list in the file replaces the default list wholesale.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".marbles", "configs", filename)
}
