package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShip loads the voyage configuration.
// Search order: customPath -> ~/.shipward/configs/ship.yaml -> ./configs/ship.yaml -> embedded default
func LoadShip(customPath string) (ShipConfig, error) {
	var cfg ShipConfig

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

	// Try user config directory
	if userCfgPath := userConfigPath("ship.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/ship.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultShipYAML, &cfg); err != nil {
		return DefaultShipConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shipward", "configs", filename)
}

// ApplyShipPreset modifies the config based on a difficulty preset.
func ApplyShipPreset(cfg *ShipConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust pacing based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.CooldownMS = 2000
	case DifficultyHard:
		cfg.Gameplay.CooldownMS = 4000
		cfg.Difficulty.Scaling.DamageMultiplier = 4.0
	}
}
