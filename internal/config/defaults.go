package config

import (
	_ "embed"
)

//go:embed defaults/ship.yaml
var defaultShipYAML []byte

// DefaultShipConfig returns the default voyage configuration.
// Kept in sync with defaults/ship.yaml as the last-resort fallback.
func DefaultShipConfig() ShipConfig {
	return ShipConfig{
		Physics: ShipPhysics{
			TickMS:        100,
			MaxStepMS:     1000,
			DraughtScale:  0.02,
			DistanceScale: 1.0,
			FloodRate:     2.0,
		},
		Gameplay: ShipGameplay{
			Columns:    7,
			CooldownMS: 3000,
			StartHull:  3,
		},
		Modules: map[string]ModuleSpec{
			"hull": {
				Weight:    5,
				Health:    10,
				Fragility: 0.06,
				Buoyancy:  12,
				Solid:     true,
			},
			"castle": {
				Weight:    4,
				Health:    12,
				Fragility: 0.04,
				Solid:     true,
			},
			"boiler": {
				Weight:    8,
				Health:    8,
				Fragility: 0.10,
				Solid:     true,
			},
			"propeller": {
				Weight:    6,
				Health:    6,
				Fragility: 0.08,
				Speed:     3,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				DamageMultiplier: 3.0,
			},
		},
	}
}
