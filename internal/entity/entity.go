// Package entity provides the ordered entity registry and click/hover
// dispatch that drive all in-game interaction. Entities are plain values
// implementing small capability interfaces; the registry never knows what
// kind of object it is holding.
package entity

import (
	"github.com/shipward/shipward/internal/core"
)

// Entity is the minimal contract every registered object satisfies.
// Optional behaviors (update, render, hit-test, click, hover) are
// discovered by interface assertion at dispatch time.
type Entity interface {
	// Depth orders rendering: higher depth draws on top.
	Depth() int

	// Alive reports whether the entity is still part of the world.
	// Dead entities are dropped by the next compaction pass.
	Alive() bool

	// Visible reports whether the entity should be drawn.
	Visible() bool

	// Updating reports whether the entity receives ticks and is
	// eligible for interaction.
	Updating() bool

	// ClickableWhilePaused reports whether the entity still receives
	// clicks while the session is paused.
	ClickableWhilePaused() bool
}

// Updater is implemented by entities that advance per simulation tick.
// All updates within one tick see the same dt and the same now.
type Updater interface {
	Update(dt, now float64)
}

// Drawer is implemented by entities that draw themselves.
type Drawer interface {
	Render(dst *core.Screen)
}

// Hittable is implemented by entities that occupy screen space.
// HitTest reports whether the point (x, y) lands on the entity.
type Hittable interface {
	HitTest(x, y int) bool
}

// Clickable is implemented by entities that react to pointer presses.
type Clickable interface {
	Hittable
	OnClick(x, y int)
}

// Hoverable is implemented by entities that react to the pointer
// entering and leaving them.
type Hoverable interface {
	Hittable
	OnHoverEnter()
	OnHoverExit()
}

// Base carries the common capability flags and satisfies the Entity
// interface, so concrete entities only embed it and set fields.
type Base struct {
	Z          int  // depth index
	Dead       bool // removal requested; collected on next compaction
	Hidden     bool // skip rendering
	Frozen     bool // skip updates and interaction
	PauseClick bool // remains clickable while the session is paused
}

func (b *Base) Depth() int                 { return b.Z }
func (b *Base) Alive() bool                { return !b.Dead }
func (b *Base) Visible() bool              { return !b.Hidden }
func (b *Base) Updating() bool             { return !b.Frozen }
func (b *Base) ClickableWhilePaused() bool { return b.PauseClick }

// Kill marks the entity for removal at the next compaction pass.
func (b *Base) Kill() { b.Dead = true }
