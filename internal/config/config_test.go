package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadShipDefaults(t *testing.T) {
	cfg, err := LoadShip("")
	if err != nil {
		t.Fatalf("LoadShip with no path should fall back to defaults: %v", err)
	}

	if cfg.Physics.TickMS != 100 {
		t.Errorf("TickMS = %d, want 100", cfg.Physics.TickMS)
	}
	if cfg.Physics.MaxStepMS != 1000 {
		t.Errorf("MaxStepMS = %d, want 1000", cfg.Physics.MaxStepMS)
	}
	if cfg.Gameplay.Columns != 7 {
		t.Errorf("Columns = %d, want 7", cfg.Gameplay.Columns)
	}
	if _, ok := cfg.Modules["hull"]; !ok {
		t.Error("Default config should define a hull module")
	}
	if _, ok := cfg.Modules["propeller"]; !ok {
		t.Error("Default config should define a propeller module")
	}
}

func TestLoadShipCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ship.yaml")
	yaml := `
physics:
  tick_ms: 50
  max_step_ms: 500
gameplay:
  columns: 11
  cooldown_ms: 1500
  start_hull: 5
modules:
  hull:
    weight: 3
    health: 20
    solid: true
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShip(path)
	if err != nil {
		t.Fatalf("LoadShip(%s) failed: %v", path, err)
	}
	if cfg.Physics.TickMS != 50 {
		t.Errorf("TickMS = %d, want 50", cfg.Physics.TickMS)
	}
	if cfg.Gameplay.Columns != 11 || cfg.Gameplay.StartHull != 5 {
		t.Errorf("Gameplay = %+v", cfg.Gameplay)
	}
	if cfg.Modules["hull"].Health != 20 {
		t.Errorf("Hull health = %v, want 20", cfg.Modules["hull"].Health)
	}
}

func TestLoadShipMissingCustomPath(t *testing.T) {
	if _, err := LoadShip(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Missing explicit config path should be an error, not a silent fallback")
	}
}

func TestLoadShipMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadShip(path); err == nil {
		t.Error("Malformed config should be an error")
	}
}

func TestApplyShipPreset(t *testing.T) {
	cfg := DefaultShipConfig()
	ApplyShipPreset(&cfg, DifficultyEasy)
	if cfg.Gameplay.CooldownMS != 2000 {
		t.Errorf("Easy cooldown = %d, want 2000", cfg.Gameplay.CooldownMS)
	}
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.0 {
		t.Errorf("Easy difficulty = %+v", cfg.Difficulty)
	}

	cfg = DefaultShipConfig()
	ApplyShipPreset(&cfg, DifficultyHard)
	if cfg.Gameplay.CooldownMS != 4000 {
		t.Errorf("Hard cooldown = %d, want 4000", cfg.Gameplay.CooldownMS)
	}
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("Hard initial level = %v, want 0.7", cfg.Difficulty.InitialLevel)
	}
	if cfg.Difficulty.Scaling.DamageMultiplier != 4.0 {
		t.Errorf("Hard damage multiplier = %v, want 4.0", cfg.Difficulty.Scaling.DamageMultiplier)
	}

	cfg = DefaultShipConfig()
	ApplyShipPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("Fixed preset should disable progression")
	}
}

func TestInitialLevelForPreset(t *testing.T) {
	cases := []struct {
		preset DifficultyPreset
		want   float64
	}{
		{DifficultyEasy, 0.0},
		{DifficultyNormal, 0.3},
		{DifficultyHard, 0.7},
		{DifficultyPreset("bogus"), 0.0},
	}
	for _, c := range cases {
		if got := InitialLevelForPreset(c.preset); got != c.want {
			t.Errorf("InitialLevelForPreset(%s) = %v, want %v", c.preset, got, c.want)
		}
	}
}
