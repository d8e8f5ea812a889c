package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadStars loads Star Catcher configuration.
// Search order: customPath -> ~/.starcatch/configs/stars.yaml -> ./configs/stars.yaml -> embedded default
func LoadStars(customPath string) (StarsConfig, error) {
	// Start from defaults so partial files only override what they set.
	cfg := DefaultStarsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("stars.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "stars.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultStarsConfig()
	if err := yaml.Unmarshal(defaultStarsYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultStarsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (StarsConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StarsConfig{}, false
	}
	cfg := DefaultStarsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StarsConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return StarsConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starcatch", "configs", filename)
}
