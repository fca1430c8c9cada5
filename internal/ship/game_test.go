package ship

import (
	"testing"

	"github.com/shipward/shipward/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func resetWiring() {
	SetConfigPath("")
	SetDifficultyPreset("")
	SetSound(nil)
}

func TestDeterminism(t *testing.T) {
	resetWiring()

	a, b := New(), New()
	a.Reset(testRuntime(12345))
	b.Reset(testRuntime(12345))

	in := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		a.Step(in, 0.1)
		b.Step(in, 0.1)
	}

	sa, sb := a.Session().Snapshot(), b.Session().Snapshot()
	if sa.Hash() != sb.Hash() {
		t.Errorf("Same-seeded voyages diverged after %d ticks: %d vs %d",
			sa.Tick, sa.Hash(), sb.Hash())
	}
	if sa.Tick != 300 {
		t.Errorf("Tick = %d, want 300", sa.Tick)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	resetWiring()

	a, b := New(), New()
	a.Reset(testRuntime(1))
	b.Reset(testRuntime(2))

	in := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		a.Step(in, 0.1)
		b.Step(in, 0.1)
	}

	sa, sb := a.Session().Snapshot(), b.Session().Snapshot()
	if sa.Hash() == sb.Hash() {
		t.Error("Different seeds should produce different voyages")
	}
}

func TestPauseTogglesAndFreezes(t *testing.T) {
	resetWiring()

	g := New()
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in, 0.1)
	if !res.State.Paused {
		t.Fatal("Pause action should pause the voyage")
	}

	elapsed := g.Session().Elapsed
	quiet := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(quiet, 0.1)
	}
	if g.Session().Elapsed != elapsed {
		t.Error("Paused voyage must not advance")
	}

	in = core.NewInputFrame()
	in.Set(core.ActionPause)
	res = g.Step(in, 0.1)
	if res.State.Paused {
		t.Error("Second pause action should resume")
	}
}

func TestRestartAfterLoss(t *testing.T) {
	resetWiring()

	g := New()
	g.Reset(testRuntime(1))

	// Force the ship under.
	g.Session().Draught = 100
	res := g.Step(core.NewInputFrame(), 0.1)
	if !res.State.GameOver {
		t.Fatal("Voyage at extreme draught should be lost")
	}

	// Restart is ignored while the voyage is alive, honored after loss.
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	res = g.Step(in, 0.1)
	if res.State.GameOver {
		t.Error("Restart after loss should start a fresh voyage")
	}
	s := g.Session()
	if s.Lost || !s.Running || s.Elapsed != 0 {
		t.Error("Fresh voyage should be running from zero")
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	resetWiring()

	g := New()
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame(), 0.1)
	elapsed := g.Session().Elapsed

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in, 0.1)
	if g.Session().Elapsed <= elapsed {
		t.Error("Restart while running should be ignored and the tick applied")
	}
}

func TestDigitPicksFromOpenMenu(t *testing.T) {
	resetWiring()

	g := New()
	g.Reset(testRuntime(1))
	s := g.Session()

	// Open the build menu on the slot next to the starting hull.
	cols := s.Grid.Cols()
	start := (cols - 3) / 2 // default start hull is 3 wide
	col := start - 1
	r := s.layout.CellRect(col, 0, s.Draught)
	cx, cy := r.Center()

	in := core.NewInputFrame()
	in.SetClick(cx, cy)
	g.Step(in, 0.1)
	if !g.menu.open {
		t.Fatal("Click on a buildable slot should open the menu")
	}

	in = core.NewInputFrame()
	in.Digit = 1
	g.Step(in, 0.1)
	if g.menu.open {
		t.Error("Digit pick should close the menu")
	}
	if s.Grid.KindAt(col, 0) != KindScaffold {
		t.Errorf("Picking hull should start a build, cell holds %v", s.Grid.KindAt(col, 0))
	}
}

func TestMenuOutsideClickCancels(t *testing.T) {
	resetWiring()

	g := New()
	g.Reset(testRuntime(1))
	s := g.Session()

	cols := s.Grid.Cols()
	col := (cols-3)/2 - 1
	r := s.layout.CellRect(col, 0, s.Draught)
	cx, cy := r.Center()

	in := core.NewInputFrame()
	in.SetClick(cx, cy)
	g.Step(in, 0.1)
	if !g.menu.open {
		t.Fatal("Menu should be open")
	}

	in = core.NewInputFrame()
	in.SetClick(0, 0)
	g.Step(in, 0.1)
	if g.menu.open {
		t.Error("Click outside the menu should close it")
	}
	if s.Grid.KindAt(col, 0) != KindSlot {
		t.Error("Cancelled menu must not place anything")
	}
}

func TestStateReportsDistanceAsScore(t *testing.T) {
	resetWiring()

	g := New()
	g.Reset(testRuntime(1))
	g.Session().Distance = 123.9

	if got := g.State().Score; got != 123 {
		t.Errorf("Score = %d, want truncated distance 123", got)
	}

	d, secs, built := g.VoyageStats()
	if d != 123 || secs != 0 || built != 0 {
		t.Errorf("VoyageStats = (%d, %d, %d), want (123, 0, 0)", d, secs, built)
	}
}
