package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a demo.
// Search order: customPath -> ~/.bounce/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default
func Load(demoID, customPath string) (BallsConfig, error) {
	var cfg BallsConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := demoID + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", filename)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	fallback, known := hardcodedDefault(demoID)
	if !known {
		return cfg, fmt.Errorf("no default config for demo %q", demoID)
	}
	if err := yaml.Unmarshal(GetDefaultYAML(demoID), &cfg); err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads and parses an optional config file. Missing or malformed
// files are skipped so the next location in the search order is used.
func tryLoad(path string) (BallsConfig, bool) {
	var cfg BallsConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bounce", "configs", filename)
}
