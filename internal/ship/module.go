package ship

// DamageLevel is the discrete condition of a module, derived from damage
// versus health. It moves normal -> damaged -> broken under accumulating
// damage and returns to normal only through repair completion.
type DamageLevel int

const (
	LevelNormal DamageLevel = iota
	LevelDamaged
	LevelBroken
)

// String returns a human-readable name for the level.
func (l DamageLevel) String() string {
	switch l {
	case LevelNormal:
		return "normal"
	case LevelDamaged:
		return "damaged"
	case LevelBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// Module occupies one grid cell. Static attributes are copied from the
// kind's Def at creation so a module answers for itself; mutable state
// is the damage/flood machine plus display flags.
type Module struct {
	Kind     Kind
	Col, Row int

	// Static attributes (from Def).
	Weight    float64
	Health    float64
	Fragility float64 // zero means indestructible
	Buoyancy  float64 // flotation when fully submerged and dry
	Speed     float64 // propulsion contribution when not broken
	Solid     bool

	// Mutable state.
	Damage    float64 // always in [0, Health]
	Flood     float64 // water taken on while broken, capped at Buoyancy
	Repairing bool    // visual feedback while a repair is pending

	// Display flags, refreshed whenever a neighbor changes.
	TopCap bool // show the hull-top cap: nothing solid directly above
}

// newModule creates a module of the given kind at (col, row).
func newModule(def Def, col, row int) *Module {
	return &Module{
		Kind:      def.Kind,
		Col:       col,
		Row:       row,
		Weight:    def.Weight,
		Health:    def.Health,
		Fragility: def.Fragility,
		Buoyancy:  def.Buoyancy,
		Speed:     def.Speed,
		Solid:     def.Solid,
	}
}

// Level derives the damage level. Damaged once damage reaches half of
// health, broken once damage reaches health exactly (accrual caps there).
func (m *Module) Level() DamageLevel {
	if m.Health <= 0 || m.Damage <= 0 {
		return LevelNormal
	}
	if m.Damage >= m.Health {
		return LevelBroken
	}
	if m.Damage >= m.Health/2 {
		return LevelDamaged
	}
	return LevelNormal
}

// Broken reports whether the module has reached its damage cap.
func (m *Module) Broken() bool {
	return m.Level() == LevelBroken
}

// AccrueDamage adds damage, capped at health so Level stays monotonic
// until an explicit repair.
func (m *Module) AccrueDamage(amount float64) {
	if m.Fragility <= 0 || m.Health <= 0 {
		return
	}
	m.Damage += amount
	if m.Damage > m.Health {
		m.Damage = m.Health
	}
	if m.Damage < 0 {
		m.Damage = 0
	}
}

// AccrueFlood takes on water while broken. Only flotation modules flood,
// and the volume is capped at the module's buoyancy so a wreck cannot
// pull harder than it could ever have lifted.
func (m *Module) AccrueFlood(rate, dt float64) {
	if m.Buoyancy <= 0 || !m.Broken() {
		return
	}
	m.Flood += rate * dt
	if m.Flood > m.Buoyancy {
		m.Flood = m.Buoyancy
	}
}

// CompleteRepair resets the module to pristine condition. Damage, flood,
// and the repairing flag clear together; no intermediate state is
// observable.
func (m *Module) CompleteRepair() {
	m.Damage = 0
	m.Flood = 0
	m.Repairing = false
}

// Submersion returns the fraction of the module's vertical extent below
// the draught line, in [0, 1]. Row 0 sits lowest.
func (m *Module) Submersion(draught float64) float64 {
	s := draught - float64(m.Row)
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// BuoyancyAt returns the module's current flotation contribution:
// zero when dry, otherwise proportional to submersion minus the water
// already taken on. Never negative.
func (m *Module) BuoyancyAt(draught float64) float64 {
	if m.Buoyancy <= 0 {
		return 0
	}
	sub := m.Submersion(draught)
	if sub <= 0 {
		return 0
	}
	b := m.Buoyancy*sub - m.Flood
	if b < 0 {
		return 0
	}
	return b
}

// SpeedContribution returns the module's propulsion, zero while broken.
func (m *Module) SpeedContribution() float64 {
	if m.Broken() {
		return 0
	}
	return m.Speed
}
