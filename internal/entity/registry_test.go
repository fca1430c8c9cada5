package entity

import (
	"testing"

	"github.com/shipward/shipward/internal/core"
)

// stub is a test entity tracking every callback it receives.
type stub struct {
	Base
	rect core.Rect

	updates int
	lastDt  float64
	lastNow float64

	clicks int
	enters int
	exits  int
	mark   rune
	out    *[]rune // shared render log
}

func newStub(z int, rect core.Rect, mark rune, out *[]rune) *stub {
	return &stub{Base: Base{Z: z}, rect: rect, mark: mark, out: out}
}

func (s *stub) Update(dt, now float64) {
	s.updates++
	s.lastDt = dt
	s.lastNow = now
}

func (s *stub) Render(dst *core.Screen) {
	if s.out != nil {
		*s.out = append(*s.out, s.mark)
	}
}

func (s *stub) HitTest(x, y int) bool { return s.rect.Contains(x, y) }
func (s *stub) OnClick(x, y int)      { s.clicks++ }
func (s *stub) OnHoverEnter()         { s.enters++ }
func (s *stub) OnHoverExit()          { s.exits++ }

func TestCompactPreservesOrder(t *testing.T) {
	r := New()
	a := newStub(0, core.Rect{}, 'a', nil)
	b := newStub(0, core.Rect{}, 'b', nil)
	c := newStub(0, core.Rect{}, 'c', nil)
	r.Add(a)
	r.Add(b)
	r.Add(c)

	b.Kill()
	r.Compact()

	if r.Len() != 2 {
		t.Fatalf("Len after compact = %d, want 2", r.Len())
	}
	items := r.Items()
	if items[0] != a || items[1] != c {
		t.Error("Compact should preserve relative order of survivors")
	}
}

func TestUpdateSkipsDeadAndFrozen(t *testing.T) {
	r := New()
	live := newStub(0, core.Rect{}, 'l', nil)
	dead := newStub(0, core.Rect{}, 'd', nil)
	frozen := newStub(0, core.Rect{}, 'f', nil)
	dead.Kill()
	frozen.Frozen = true
	r.Add(live)
	r.Add(dead)
	r.Add(frozen)

	r.Update(0.1, 1.5)

	if live.updates != 1 || live.lastDt != 0.1 || live.lastNow != 1.5 {
		t.Errorf("Live entity should update once with (0.1, 1.5), got %d (%v, %v)",
			live.updates, live.lastDt, live.lastNow)
	}
	if dead.updates != 0 {
		t.Error("Dead entity must not update")
	}
	if frozen.updates != 0 {
		t.Error("Frozen entity must not update")
	}
}

func TestRenderDepthOrder(t *testing.T) {
	var log []rune
	r := New()
	r.Add(newStub(10, core.Rect{}, 'b', &log))
	r.Add(newStub(5, core.Rect{}, 'a', &log))
	r.Add(newStub(10, core.Rect{}, 'c', &log))
	hidden := newStub(1, core.Rect{}, 'h', &log)
	hidden.Hidden = true
	r.Add(hidden)

	dst := core.NewScreen(10, 10)
	r.Render(dst)

	if string(log) != "abc" {
		t.Errorf("Render order = %q, want depth order with stable ties %q", string(log), "abc")
	}
}

func TestClickFirstHitStops(t *testing.T) {
	r := New()
	box := core.NewRect(0, 0, 10, 10)
	first := newStub(0, box, 'f', nil)
	second := newStub(0, box, 's', nil)
	r.Add(first)
	r.Add(second)

	if !r.Click(5, 5, false) {
		t.Fatal("Click inside both entities should be consumed")
	}
	if first.clicks != 1 || second.clicks != 0 {
		t.Errorf("First entity in array order should take the click, got %d/%d",
			first.clicks, second.clicks)
	}

	if r.Click(50, 50, false) {
		t.Error("Click outside everything should not be consumed")
	}
}

func TestClickWhilePaused(t *testing.T) {
	r := New()
	box := core.NewRect(0, 0, 10, 10)
	normal := newStub(0, box, 'n', nil)
	overlay := newStub(5, box, 'o', nil)
	overlay.PauseClick = true
	r.Add(normal)
	r.Add(overlay)

	if !r.Click(5, 5, true) {
		t.Fatal("Paused click should still reach pause-clickable entities")
	}
	if normal.clicks != 0 {
		t.Error("Regular entity must not receive clicks while paused")
	}
	if overlay.clicks != 1 {
		t.Error("Pause-clickable entity should receive the click")
	}
}

func TestHoverTransitions(t *testing.T) {
	r := New()
	a := newStub(0, core.NewRect(0, 0, 5, 5), 'a', nil)
	b := newStub(0, core.NewRect(10, 0, 5, 5), 'b', nil)
	r.Add(a)
	r.Add(b)

	r.Hover(2, 2, false)
	if a.enters != 1 || a.exits != 0 {
		t.Fatalf("Hover should enter a: enters=%d exits=%d", a.enters, a.exits)
	}

	// Same entity again: no fresh events.
	r.Hover(3, 3, false)
	if a.enters != 1 {
		t.Error("Hovering the same entity must not re-enter")
	}

	// Move to b: a exits, b enters.
	r.Hover(12, 2, false)
	if a.exits != 1 || b.enters != 1 {
		t.Errorf("Hover move should exit a and enter b: a.exits=%d b.enters=%d", a.exits, b.enters)
	}

	// Move to empty space: b exits.
	r.Hover(50, 50, false)
	if b.exits != 1 {
		t.Errorf("Hover to empty space should exit b, exits=%d", b.exits)
	}
	if r.Hovered() != nil {
		t.Error("Nothing should be hovered over empty space")
	}
}

func TestDeadHoveredForgottenWithoutExit(t *testing.T) {
	r := New()
	a := newStub(0, core.NewRect(0, 0, 5, 5), 'a', nil)
	r.Add(a)

	r.Hover(2, 2, false)
	a.Kill()

	r.Hover(50, 50, false)
	if a.exits != 0 {
		t.Error("Dead hovered entity must not receive an exit event")
	}
	if r.Hovered() != nil {
		t.Error("Dead entity must not report as hovered")
	}
}

func TestClearHoverFiresExit(t *testing.T) {
	r := New()
	a := newStub(0, core.NewRect(0, 0, 5, 5), 'a', nil)
	r.Add(a)

	r.Hover(2, 2, false)
	r.ClearHover()
	if a.exits != 1 {
		t.Errorf("ClearHover should fire exit on the live hovered entity, exits=%d", a.exits)
	}

	// Clearing again is a no-op.
	r.ClearHover()
	if a.exits != 1 {
		t.Error("Repeated ClearHover must not fire again")
	}
}
