// Package config provides YAML-based game configuration loading and
// difficulty management for shipward.
package config

// ShipConfig contains all configuration for a voyage.
type ShipConfig struct {
	Physics    ShipPhysics           `yaml:"physics"`
	Gameplay   ShipGameplay          `yaml:"gameplay"`
	Modules    map[string]ModuleSpec `yaml:"modules"`
	Difficulty DifficultyConfig      `yaml:"difficulty"`
}

// ShipPhysics defines the simulation constants.
type ShipPhysics struct {
	TickMS        int     `yaml:"tick_ms"`        // fixed simulation period
	MaxStepMS     int     `yaml:"max_step_ms"`    // clamp for stalled timers
	DraughtScale  float64 `yaml:"draught_scale"`  // draught units per (weight x second)
	DistanceScale float64 `yaml:"distance_scale"` // distance units per (speed x second)
	FloodRate     float64 `yaml:"flood_rate"`     // flood volume per second while broken
}

// ShipGameplay defines the board and player-action parameters.
type ShipGameplay struct {
	Columns    int `yaml:"columns"`     // fixed grid width
	CooldownMS int `yaml:"cooldown_ms"` // global action cooldown
	StartHull  int `yaml:"start_hull"`  // hull modules on the base row at start
}

// ModuleSpec defines the static attributes of one module kind.
type ModuleSpec struct {
	Weight    float64 `yaml:"weight"`
	Health    float64 `yaml:"health"`
	Fragility float64 `yaml:"fragility"` // zero means indestructible
	Buoyancy  float64 `yaml:"buoyancy"`
	Speed     float64 `yaml:"speed"`
	Solid     bool    `yaml:"solid"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a voyage.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "distance", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // distance/seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	DamageMultiplier float64 `yaml:"damage_multiplier"` // fragility multiplier at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
