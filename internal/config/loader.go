package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads the game configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default.
// Only an explicit customPath can produce an error; broken implicit files are skipped.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("flappy.yaml"),
		filepath.Join("configs", "flappy.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so partial files only
// override the keys they name, and validates the result.
func Parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
