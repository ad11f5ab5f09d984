package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the gameplay configuration and validates it.
// Search order: customPath -> ~/.typebomb/configs/typebomb.yaml ->
// ./configs/typebomb.yaml -> embedded default.
// An explicit customPath that fails to load or validate is an error;
// the fallback locations fail silently toward the embedded default.
func Load(customPath string) (Game, error) {
	var cfg Game

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	if userPath := userConfigPath("typebomb.yaml"); userPath != "" {
		if cfg, ok := tryLoad(userPath); ok {
			return cfg, nil
		}
	}

	if cfg, ok := tryLoad(filepath.Join("configs", "typebomb.yaml")); ok {
		return cfg, nil
	}

	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultGame(), nil
	}
	return cfg, nil
}

// tryLoad reads and parses a config file, returning ok=false on any failure.
func tryLoad(path string) (Game, bool) {
	var cfg Game
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the per-user config path, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".typebomb", "configs", filename)
}
