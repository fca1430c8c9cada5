package config

import "math"

// DifficultyManager calculates the difficulty coefficient that scales
// random damage accrual as a voyage progresses. The exact curve is a
// tunable parameter, not a law: level interpolates from the configured
// initial level to 1.0 as distance or elapsed time approaches max_at.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on
// distance traveled and elapsed seconds.
func (d *DifficultyManager) Level(distance, elapsed float64) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "distance":
		progress = distance / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// DamageMultiplier returns the coefficient applied to per-tick damage
// rolls: 1.0 at level zero, rising to the configured multiplier at max.
func (d *DifficultyManager) DamageMultiplier(distance, elapsed float64) float64 {
	level := d.Level(distance, elapsed)
	scale := d.cfg.Scaling.DamageMultiplier
	if scale < 1 {
		scale = 1
	}
	return 1.0 + level*(scale-1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
