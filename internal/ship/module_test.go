package ship

import (
	"testing"
)

func testModule(health, fragility, buoyancy float64) *Module {
	return newModule(Def{
		Kind:      KindHull,
		Weight:    5,
		Health:    health,
		Fragility: fragility,
		Buoyancy:  buoyancy,
		Solid:     true,
	}, 1, 0)
}

func TestDamageLevelThresholds(t *testing.T) {
	m := testModule(10, 0.1, 12)

	if m.Level() != LevelNormal {
		t.Fatalf("Fresh module should be normal, got %v", m.Level())
	}

	// Below half: still normal
	m.AccrueDamage(4)
	if m.Level() != LevelNormal {
		t.Errorf("Damage 4/10 should be normal, got %v", m.Level())
	}

	// Exactly half: damaged, not broken
	m.AccrueDamage(1)
	if m.Level() != LevelDamaged {
		t.Errorf("Damage 5/10 should be damaged, got %v", m.Level())
	}

	// Exactly health: broken
	m.AccrueDamage(5)
	if m.Level() != LevelBroken {
		t.Errorf("Damage 10/10 should be broken, got %v", m.Level())
	}
	if !m.Broken() {
		t.Error("Broken() should report true at full damage")
	}
}

func TestDamageStaysInBounds(t *testing.T) {
	m := testModule(10, 0.1, 12)

	// Over-accrual caps at health
	m.AccrueDamage(1000)
	if m.Damage != m.Health {
		t.Errorf("Damage should cap at health %v, got %v", m.Health, m.Damage)
	}
	if m.Level() != LevelBroken {
		t.Errorf("Capped damage should read broken, got %v", m.Level())
	}

	// Negative accrual floors at zero
	m.Damage = 0
	m.AccrueDamage(-50)
	if m.Damage != 0 {
		t.Errorf("Damage should floor at 0, got %v", m.Damage)
	}
}

func TestIndestructibleModuleNeverDamages(t *testing.T) {
	m := testModule(10, 0, 12)

	m.AccrueDamage(100)
	if m.Damage != 0 {
		t.Errorf("Zero-fragility module should ignore damage, got %v", m.Damage)
	}
	if m.Level() != LevelNormal {
		t.Errorf("Zero-fragility module should stay normal, got %v", m.Level())
	}
}

func TestRepairResetsAtomically(t *testing.T) {
	m := testModule(10, 0.1, 12)
	m.AccrueDamage(10)
	m.AccrueFlood(2, 1)
	m.Repairing = true

	m.CompleteRepair()

	if m.Damage != 0 {
		t.Errorf("Repair should zero damage, got %v", m.Damage)
	}
	if m.Flood != 0 {
		t.Errorf("Repair should zero flood, got %v", m.Flood)
	}
	if m.Repairing {
		t.Error("Repair should clear the repairing flag")
	}
	if m.Level() != LevelNormal {
		t.Errorf("Repaired module should be normal, got %v", m.Level())
	}
}

func TestFloodOnlyWhileBroken(t *testing.T) {
	m := testModule(10, 0.1, 12)

	m.AccrueFlood(2, 1)
	if m.Flood != 0 {
		t.Errorf("Intact module should not flood, got %v", m.Flood)
	}

	m.AccrueDamage(10)
	m.AccrueFlood(2, 1)
	if m.Flood != 2 {
		t.Errorf("Broken module should flood by rate*dt, got %v", m.Flood)
	}

	// Flood caps at buoyancy
	m.AccrueFlood(2, 100)
	if m.Flood != m.Buoyancy {
		t.Errorf("Flood should cap at buoyancy %v, got %v", m.Buoyancy, m.Flood)
	}
}

func TestFloodNeedsBuoyancy(t *testing.T) {
	m := testModule(10, 0.1, 0)
	m.AccrueDamage(10)

	m.AccrueFlood(2, 10)
	if m.Flood != 0 {
		t.Errorf("Module without buoyancy should never flood, got %v", m.Flood)
	}
}

func TestSubmersion(t *testing.T) {
	m := testModule(10, 0.1, 12)
	m.Row = 1

	cases := []struct {
		draught float64
		want    float64
	}{
		{0, 0},    // fully above
		{1, 0},    // water just reaches the row
		{1.5, 0.5},
		{2, 1},    // fully submerged
		{5, 1},    // cannot exceed 1
	}

	for _, c := range cases {
		if got := m.Submersion(c.draught); got != c.want {
			t.Errorf("Submersion(%v) = %v, want %v", c.draught, got, c.want)
		}
	}
}

func TestBuoyancyAt(t *testing.T) {
	m := testModule(10, 0.1, 12)

	// Dry module contributes nothing
	if got := m.BuoyancyAt(0); got != 0 {
		t.Errorf("Dry module buoyancy = %v, want 0", got)
	}

	// Half submerged: half buoyancy
	if got := m.BuoyancyAt(0.5); got != 6 {
		t.Errorf("Half-submerged buoyancy = %v, want 6", got)
	}

	// Flood subtracts
	m.Damage = m.Health
	m.AccrueFlood(4, 1)
	if got := m.BuoyancyAt(1); got != 8 {
		t.Errorf("Flooded buoyancy = %v, want 8", got)
	}

	// Never negative
	m.Flood = 12
	if got := m.BuoyancyAt(0.1); got != 0 {
		t.Errorf("Overflooded buoyancy = %v, want 0", got)
	}
}

func TestSpeedContributionZeroWhileBroken(t *testing.T) {
	m := newModule(Def{Kind: KindPropeller, Health: 6, Fragility: 0.1, Speed: 3}, 1, 1)

	if got := m.SpeedContribution(); got != 3 {
		t.Errorf("Intact propeller speed = %v, want 3", got)
	}

	m.AccrueDamage(6)
	if got := m.SpeedContribution(); got != 0 {
		t.Errorf("Broken propeller speed = %v, want 0", got)
	}
}
