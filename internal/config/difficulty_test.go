package config

import "testing"

func distanceDifficulty(initial, maxAt, scale float64) *DifficultyManager {
	return NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: initial,
		Progression:  ProgressionConfig{Type: "distance", MaxAt: maxAt},
		Scaling:      ScalingConfig{DamageMultiplier: scale},
	})
}

func TestLevelInterpolatesByDistance(t *testing.T) {
	d := distanceDifficulty(0.0, 1000, 3.0)

	cases := []struct {
		distance float64
		want     float64
	}{
		{0, 0.0},
		{250, 0.25},
		{500, 0.5},
		{1000, 1.0},
		{5000, 1.0}, // progress caps at max_at
	}
	for _, c := range cases {
		if got := d.Level(c.distance, 0); got != c.want {
			t.Errorf("Level(distance=%v) = %v, want %v", c.distance, got, c.want)
		}
	}
}

func TestLevelStartsAtInitial(t *testing.T) {
	d := distanceDifficulty(0.4, 1000, 3.0)

	if got := d.Level(0, 0); got != 0.4 {
		t.Errorf("Level at start = %v, want initial 0.4", got)
	}
	// Halfway: interpolate from 0.4 toward 1.0
	if got := d.Level(500, 0); got != 0.7 {
		t.Errorf("Level halfway = %v, want 0.7", got)
	}
}

func TestLevelByTime(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 600},
		Scaling:      ScalingConfig{DamageMultiplier: 2.0},
	})

	if got := d.Level(99999, 300); got != 0.5 {
		t.Errorf("Time progression should ignore distance, got %v", got)
	}
}

func TestLevelDisabled(t *testing.T) {
	d := distanceDifficulty(0.25, 1000, 3.0)
	d.SetEnabled(false)

	if got := d.Level(5000, 5000); got != 0.25 {
		t.Errorf("Disabled progression should hold the initial level, got %v", got)
	}
	if d.IsEnabled() {
		t.Error("IsEnabled should report false after SetEnabled(false)")
	}
}

func TestDamageMultiplier(t *testing.T) {
	d := distanceDifficulty(0.0, 1000, 3.0)

	if got := d.DamageMultiplier(0, 0); got != 1.0 {
		t.Errorf("Multiplier at level 0 = %v, want 1.0", got)
	}
	if got := d.DamageMultiplier(500, 0); got != 2.0 {
		t.Errorf("Multiplier at level 0.5 = %v, want 2.0", got)
	}
	if got := d.DamageMultiplier(1000, 0); got != 3.0 {
		t.Errorf("Multiplier at level 1 = %v, want 3.0", got)
	}
}

func TestDamageMultiplierFloorsScale(t *testing.T) {
	d := distanceDifficulty(0.0, 1000, 0.5) // nonsense scale below 1

	if got := d.DamageMultiplier(1000, 0); got != 1.0 {
		t.Errorf("Sub-unit scale should clamp to 1.0, got %v", got)
	}
}

func TestSetInitialLevelClamps(t *testing.T) {
	d := distanceDifficulty(0.0, 1000, 3.0)

	d.SetInitialLevel(1.7)
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("Initial level should clamp to 1.0, got %v", got)
	}
	d.SetInitialLevel(-0.3)
	if got := d.Level(0, 0); got != 0.0 {
		t.Errorf("Initial level should clamp to 0.0, got %v", got)
	}
}
