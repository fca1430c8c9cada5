package ship

import (
	"math/rand"

	"github.com/shipward/shipward/internal/config"
	"github.com/shipward/shipward/internal/core"
	"github.com/shipward/shipward/internal/entity"
)

// Sound is the cue-playback capability the session consumes.
// Fire-and-forget; the simulation never inspects a result.
type Sound interface {
	Play(cue string)
}

// NopSound discards all cues.
type NopSound struct{}

func (NopSound) Play(string) {}

// Sound cue names emitted by the session.
const (
	cueBuild  = "build"
	cueRepair = "repair"
	cueCrack  = "crack"
	cueSplash = "splash"
	cueSunk   = "sunk"
)

// Chooser presents a build menu for a cell: a list of candidate kinds,
// a confirm callback taking the chosen kind, and a cancel callback.
// Implemented by UI glue outside the simulation.
type Chooser interface {
	Choose(cell core.Rect, candidates []Kind, confirm func(Kind), cancel func())
}

// PendingKind discriminates the single deferred player action.
type PendingKind int

const (
	PendingBuild PendingKind = iota
	PendingRepair
)

// PendingAction describes the one action waiting on the global cooldown.
// An explicit record rather than a captured closure, so the pending
// state stays inspectable.
type PendingAction struct {
	Kind  PendingKind
	Col   int
	Row   int
	Build Kind // valid when Kind == PendingBuild
}

// Session is the per-voyage mutable state: the ship grid, the entity
// registry, the physics accumulators, and the single cooldown slot.
// Constructed at session start, discarded at session end. Single
// logical thread: tick and render callbacks run to completion and
// never overlap.
type Session struct {
	cfg  *config.ShipConfig
	defs *DefTable
	diff *config.DifficultyManager
	rng  *rand.Rand

	sound   Sound
	chooser Chooser

	Grid *Grid
	Reg  *entity.Registry

	layout Layout

	Draught  float64 // module-height units below the waterline
	Distance float64
	Elapsed  float64
	Speed    float64

	Cooldown float64
	Pending  *PendingAction

	Paused  bool
	Debug   bool
	Running bool
	Lost    bool

	TickCount uint64
	Built     int // modules completed this voyage

	// Last aggregate, kept for the debug overlay only. Physics never
	// reads these back; stats are summed fresh every tick.
	LastStats Stats

	pointerX, pointerY int

	// bgDistance trails Distance smoothly so parallax layers do not
	// jitter when tick timing is bursty.
	bgDistance float64
}

// NewSession builds a session from config with the starting hull seeded
// at the base row.
func NewSession(cfg *config.ShipConfig, seed int64, sound Sound, layout Layout) *Session {
	if sound == nil {
		sound = NopSound{}
	}
	s := &Session{
		cfg:      cfg,
		defs:     BuildDefs(*cfg),
		diff:     config.NewDifficultyManager(cfg.Difficulty),
		rng:      rand.New(rand.NewSource(seed)),
		sound:    sound,
		Reg:      entity.New(),
		layout:   layout,
		Running:  true,
		pointerX: -1,
		pointerY: -1,
	}

	s.Grid = NewGrid(cfg.Gameplay.Columns, s.defs)
	s.Grid.OnCreate(func(m *Module) {
		s.Reg.Add(newModuleEntity(s, m))
	})

	// Starting hull: a centered run of hull modules on the base row.
	start := cfg.Gameplay.StartHull
	left := (cfg.Gameplay.Columns - start) / 2
	for i := 0; i < start; i++ {
		s.Grid.Seed(KindHull, left+i, 0)
	}

	return s
}

// SetChooser installs the build-menu capability.
func (s *Session) SetChooser(c Chooser) { s.chooser = c }

// Layout returns the screen layout the session dispatches hits in.
func (s *Session) Layout() Layout { return s.layout }

// Rand exposes the session RNG so spawned effects share the seed.
func (s *Session) Rand() *rand.Rand { return s.rng }

// Busy reports whether a deferred action is in flight. All click and
// hover dispatch is disabled while busy.
func (s *Session) Busy() bool { return s.Cooldown > 0 }

// Difficulty returns the current damage-scaling coefficient, derived
// from distance and elapsed time on every read.
func (s *Session) Difficulty() float64 {
	return s.diff.DamageMultiplier(s.Distance, s.Elapsed)
}

// Tick advances the simulation by dt seconds of wall-clock time.
// Call order within a tick is fixed: compact, entity updates (all with
// the same dt and now), cooldown resolution, aggregate physics, loss
// check.
func (s *Session) Tick(dt float64) {
	maxStep := float64(s.cfg.Physics.MaxStepMS) / 1000
	if dt > maxStep {
		dt = s.tickSeconds()
	}
	if dt <= 0 || !s.Running || s.Paused {
		return
	}

	s.TickCount++
	s.Elapsed += dt

	s.Reg.Compact()
	s.Reg.Update(dt, s.Elapsed)

	s.resolveCooldown(dt)

	st := s.Grid.Aggregate(s.Draught)
	s.LastStats = st
	s.Speed = st.Speed

	s.Draught += (st.Weight - st.Buoyancy) * s.cfg.Physics.DraughtScale * dt
	if s.Draught < 0 {
		s.Draught = 0
	}
	s.Distance += s.Speed * s.cfg.Physics.DistanceScale * dt

	s.checkLoss()
}

// tickSeconds returns the nominal tick period, substituted for clamped
// oversized deltas so a suspended terminal resumes at normal pace.
func (s *Session) tickSeconds() float64 {
	return float64(s.cfg.Physics.TickMS) / 1000
}

// resolveCooldown decrements the global cooldown and fires the pending
// action exactly once when it expires.
func (s *Session) resolveCooldown(dt float64) {
	if s.Cooldown <= 0 {
		return
	}
	s.Cooldown -= dt
	if s.Cooldown > 0 {
		return
	}
	s.Cooldown = 0

	p := s.Pending
	s.Pending = nil
	if p != nil {
		s.applyPending(p)
	}

	// Busy no longer blocks interaction; re-evaluate what the pointer
	// is over.
	if s.pointerX >= 0 {
		s.Reg.Hover(s.pointerX, s.pointerY, s.Paused)
	}
}

func (s *Session) applyPending(p *PendingAction) {
	switch p.Kind {
	case PendingBuild:
		m := s.Grid.Finalize(p.Build, p.Col, p.Row)
		if m == nil {
			return
		}
		s.Built++
		s.sound.Play(cueBuild)
		s.emitDust(p.Col, p.Row)

	case PendingRepair:
		m := s.Grid.At(p.Col, p.Row)
		if m == nil || !m.Repairing {
			return
		}
		m.CompleteRepair()
		s.sound.Play(cueRepair)
	}
}

// StartBuild swaps the slot at (col, row) for a scaffold and schedules
// the finished module behind the cooldown. No-op while busy.
func (s *Session) StartBuild(kind Kind, col, row int) bool {
	if s.Busy() || !s.Running {
		return false
	}
	if s.Grid.PutScaffold(col, row) == nil {
		return false
	}
	s.Pending = &PendingAction{Kind: PendingBuild, Col: col, Row: row, Build: kind}
	s.Cooldown = float64(s.cfg.Gameplay.CooldownMS) / 1000
	return true
}

// StartRepair marks the broken module at (col, row) as under repair and
// schedules completion behind the cooldown. No-op while busy.
func (s *Session) StartRepair(col, row int) bool {
	if s.Busy() || !s.Running {
		return false
	}
	m := s.Grid.At(col, row)
	if m == nil || !m.Broken() || m.Repairing {
		return false
	}
	m.Repairing = true
	s.Pending = &PendingAction{Kind: PendingRepair, Col: col, Row: row}
	s.Cooldown = float64(s.cfg.Gameplay.CooldownMS) / 1000
	return true
}

// OpenBuildMenu asks the chooser to pick among the legal kinds for the
// cell. With no candidates or no chooser, nothing happens.
func (s *Session) OpenBuildMenu(col, row int) {
	if s.Busy() || !s.Running || s.chooser == nil {
		return
	}
	kinds := s.Grid.Candidates(col, row)
	if len(kinds) == 0 {
		return
	}
	cell := s.layout.CellRect(col, row, s.Draught)
	s.chooser.Choose(cell, kinds,
		func(k Kind) { s.StartBuild(k, col, row) },
		func() {},
	)
}

// Click dispatches a pointer press. Ignored while a deferred action is
// pending; at most one entity consumes the click.
func (s *Session) Click(x, y int) bool {
	if s.Busy() || !s.Running {
		return false
	}
	return s.Reg.Click(x, y, s.Paused)
}

// PointerMove tracks the pointer and re-dispatches hover. The position
// is remembered even while busy so hover state can be rebuilt when the
// cooldown expires.
func (s *Session) PointerMove(x, y int) {
	s.pointerX, s.pointerY = x, y
	if s.Busy() || !s.Running {
		return
	}
	s.Reg.Hover(x, y, s.Paused)
}

// checkLoss flips Running to false exactly once when the draught
// reaches ship height. One-way until an explicit restart.
func (s *Session) checkLoss() {
	if s.Lost {
		return
	}
	height := float64(s.Grid.HeightRows())
	if height > 0 && s.Draught >= height {
		s.Lost = true
		s.Running = false
		s.sound.Play(cueSunk)
		s.Reg.ClearHover()
		s.Reg.Add(newLossOverlay(s.Distance))
	}
}

// BackgroundDistance returns the smoothed distance used by parallax
// layers, advanced toward the gameplay distance at render cadence.
func (s *Session) BackgroundDistance(dt float64) float64 {
	k := dt * 4
	if k > 1 {
		k = 1
	}
	s.bgDistance += (s.Distance - s.bgDistance) * k
	return s.bgDistance
}

// emitDust sprays construction dust particles around a finished cell.
func (s *Session) emitDust(col, row int) {
	r := s.layout.CellRect(col, row, s.Draught)
	cx, cy := r.Center()
	for i := 0; i < 6; i++ {
		p := SpawnDust(s.rng, core.Vec2{X: float64(cx), Y: float64(cy)}, s.Elapsed)
		s.Reg.Add(p)
	}
}
