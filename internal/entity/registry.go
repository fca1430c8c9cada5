package entity

import (
	"sort"

	"github.com/shipward/shipward/internal/core"
)

// Registry maintains the ordered collection of active entities and fans
// out updates, rendering, and pointer interaction.
//
// Rendering iterates in stable depth order; click and hover dispatch
// iterate in current array order, so insertion order breaks depth ties
// for interaction exactly as it did at creation time.
type Registry struct {
	items   []Entity
	hovered Entity
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{items: make([]Entity, 0, 64)}
}

// Add appends an entity to the active set.
func (r *Registry) Add(e Entity) {
	r.items = append(r.items, e)
}

// Len returns the number of tracked entities, including dead ones not
// yet compacted.
func (r *Registry) Len() int {
	return len(r.items)
}

// Items returns the underlying slice. Callers must not mutate it.
func (r *Registry) Items() []Entity {
	return r.items
}

// Compact drops dead entities in a single order-preserving pass.
// Called at the start of each simulation tick; removal is never done
// mid-iteration.
func (r *Registry) Compact() {
	alive := r.items[:0]
	for _, e := range r.items {
		if e.Alive() {
			alive = append(alive, e)
		}
	}
	// Zero the tail so dropped entities can be collected.
	for i := len(alive); i < len(r.items); i++ {
		r.items[i] = nil
	}
	r.items = alive
}

// Update advances every live, updating entity by the same dt and now.
func (r *Registry) Update(dt, now float64) {
	for _, e := range r.items {
		if !e.Alive() || !e.Updating() {
			continue
		}
		if u, ok := e.(Updater); ok {
			u.Update(dt, now)
		}
	}
}

// Render stably sorts entities by depth (ties preserve prior relative
// order) and draws each visible one, so higher depth lands on top.
func (r *Registry) Render(dst *core.Screen) {
	sort.SliceStable(r.items, func(i, j int) bool {
		return r.items[i].Depth() < r.items[j].Depth()
	})
	for _, e := range r.items {
		if !e.Alive() || !e.Visible() {
			continue
		}
		if d, ok := e.(Drawer); ok {
			d.Render(dst)
		}
	}
}

// eligible reports whether an entity may receive pointer interaction.
func eligible(e Entity, paused bool) bool {
	if !e.Alive() {
		return false
	}
	if paused && !e.ClickableWhilePaused() {
		return false
	}
	return e.Updating()
}

// Click dispatches a pointer press at (x, y). Entities are probed in
// current array order; the first hit receives the click and propagation
// stops. Returns true if any entity consumed the click.
func (r *Registry) Click(x, y int, paused bool) bool {
	for _, e := range r.items {
		if !eligible(e, paused) {
			continue
		}
		c, ok := e.(Clickable)
		if !ok || !c.HitTest(x, y) {
			continue
		}
		c.OnClick(x, y)
		return true
	}
	return false
}

// Hover dispatches a pointer position to hover-aware entities. On a
// change of hovered entity the old one receives OnHoverExit and the new
// one OnHoverEnter. A previously hovered entity that has died since is
// forgotten without an exit event.
func (r *Registry) Hover(x, y int, paused bool) {
	var next Entity
	for _, e := range r.items {
		if !eligible(e, paused) {
			continue
		}
		h, ok := e.(Hoverable)
		if !ok || !h.HitTest(x, y) {
			continue
		}
		next = e
		break
	}

	if next == r.hovered {
		return
	}

	if r.hovered != nil && r.hovered.Alive() {
		r.hovered.(Hoverable).OnHoverExit()
	}
	r.hovered = next
	if next != nil {
		next.(Hoverable).OnHoverEnter()
	}
}

// Hovered returns the currently hovered entity, or nil.
func (r *Registry) Hovered() Entity {
	if r.hovered != nil && !r.hovered.Alive() {
		r.hovered = nil
	}
	return r.hovered
}

// ClearHover forgets the hovered entity, firing exit if it is still alive.
func (r *Registry) ClearHover() {
	if r.hovered != nil && r.hovered.Alive() {
		r.hovered.(Hoverable).OnHoverExit()
	}
	r.hovered = nil
}
