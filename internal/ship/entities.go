package ship

import (
	"fmt"

	"github.com/shipward/shipward/internal/core"
	"github.com/shipward/shipward/internal/entity"
)

const (
	moduleDepth  = 10
	overlayDepth = 50
)

// moduleEntity mirrors one grid cell into the entity registry. It dies
// automatically when the grid replaces its module (slot to scaffold,
// scaffold to finished module), so the registry never holds a stale
// cell.
type moduleEntity struct {
	entity.Base
	s *Session
	m *Module

	hovered   bool
	prevLevel DamageLevel
	splashed  bool // splash cue fired for the current broken spell
}

func newModuleEntity(s *Session, m *Module) *moduleEntity {
	return &moduleEntity{
		Base: entity.Base{Z: moduleDepth},
		s:    s,
		m:    m,
	}
}

// Alive ties the entity's lifetime to grid occupancy: once another
// module takes the cell, this one is gone and the next compaction pass
// collects it.
func (e *moduleEntity) Alive() bool {
	return !e.Dead && e.s.Grid.At(e.m.Col, e.m.Row) == e.m
}

// Update runs the per-tick damage and flood machine plus ambient
// particle emission.
func (e *moduleEntity) Update(dt, now float64) {
	m := e.m

	if m.Fragility > 0 && !m.Broken() && !m.Repairing {
		frag := m.Fragility
		if e.s.Grid.CastleAdjacent(m.Col, m.Row) {
			frag /= 2
		}
		// Stochastic accrual: chance and size both scale with
		// fragility, difficulty, and the tick delta.
		if e.s.rng.Float64() < frag*e.s.Difficulty()*dt*4 {
			e.m.AccrueDamage(m.Health * (0.1 + e.s.rng.Float64()*0.15))
		}
	}

	if m.Broken() {
		m.AccrueFlood(e.s.cfg.Physics.FloodRate, dt)
	} else {
		e.splashed = false
	}

	level := m.Level()
	if level == LevelBroken && e.prevLevel != LevelBroken {
		e.s.sound.Play(cueCrack)
	}
	if m.Broken() && m.Buoyancy > 0 && !e.splashed {
		e.splashed = true
		e.s.sound.Play(cueSplash)
	}
	e.prevLevel = level

	e.emitAmbient(now)
}

// emitAmbient sprays the module's signature particles at a low random
// rate: steam over working boilers, spray off submerged hulls, bubbles
// out of flooding wrecks.
func (e *moduleEntity) emitAmbient(now float64) {
	m := e.m
	r := e.rect()
	cx, cy := r.Center()
	pos := core.Vec2{X: float64(cx), Y: float64(r.Y)}

	switch {
	case m.Kind == KindBoiler && !m.Broken():
		if e.s.rng.Float64() < 0.25 {
			e.s.Reg.Add(SpawnSteam(e.s.rng, pos, now))
		}
	case m.Kind == KindHull && m.Broken() && m.Submersion(e.s.Draught) > 0:
		if e.s.rng.Float64() < 0.3 {
			e.s.Reg.Add(SpawnBubble(e.s.rng, core.Vec2{X: float64(cx), Y: float64(cy)}, now))
		}
	case m.Kind == KindHull && m.Submersion(e.s.Draught) > 0 && e.s.Speed > 0:
		if e.s.rng.Float64() < 0.1 {
			e.s.Reg.Add(SpawnSpray(e.s.rng, pos, now))
		}
	}
}

func (e *moduleEntity) rect() core.Rect {
	return e.s.layout.CellRect(e.m.Col, e.m.Row, e.s.Draught)
}

func (e *moduleEntity) HitTest(x, y int) bool {
	if e.m.Kind == KindSlot && len(e.s.Grid.Candidates(e.m.Col, e.m.Row)) == 0 {
		// Dead slots are invisible to the pointer.
		return false
	}
	return e.rect().Contains(x, y)
}

// OnClick opens the build menu on a slot or starts a repair on a broken
// module. Everything else ignores clicks.
func (e *moduleEntity) OnClick(x, y int) {
	switch {
	case e.m.Kind == KindSlot:
		e.s.OpenBuildMenu(e.m.Col, e.m.Row)
	case e.m.Broken():
		e.s.StartRepair(e.m.Col, e.m.Row)
	}
}

func (e *moduleEntity) OnHoverEnter() { e.hovered = true }
func (e *moduleEntity) OnHoverExit()  { e.hovered = false }

func (e *moduleEntity) Render(dst *core.Screen) {
	drawModule(dst, e.s, e.m, e.hovered)
}

// lossOverlay is the terminal screen spawned once when the ship goes
// under. It stays clickable while the simulation is stopped so the
// player can still read it.
type lossOverlay struct {
	entity.Base
	distance float64
}

func newLossOverlay(distance float64) *lossOverlay {
	return &lossOverlay{
		Base:     entity.Base{Z: overlayDepth, PauseClick: true},
		distance: distance,
	}
}

func (o *lossOverlay) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	boxW, boxH := 34, 7
	r := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorRed)
	centered(dst, r.Y+2, "The ship has gone under", core.ColorRed)
	centered(dst, r.Y+3, fmt.Sprintf("Distance: %d", int(o.distance)), core.ColorWhite)
	centered(dst, r.Y+5, "Press R to set out again", core.ColorGray)
}

func centered(dst *core.Screen, y int, text string, c core.Color) {
	dst.DrawTextColored((dst.Width()-len(text))/2, y, text, c)
}
