// Package ship implements the voyage simulation: the module grid with its
// damage and flood state machines, the session clock, the particle system,
// and the buoyancy physics that decide whether the ship stays up.
package ship

import (
	"github.com/shipward/shipward/internal/config"
)

// Kind discriminates module types. An explicit tag compared by value;
// there is no type hierarchy behind it.
type Kind int

const (
	KindSlot      Kind = iota // empty buildable cell, never nil
	KindScaffold              // construction in progress
	KindHull                  // floats the ship, floods when broken
	KindCastle                // reinforcement, halves neighbor fragility
	KindBoiler                // feeds propellers, fragile
	KindPropeller             // moves the ship, needs a boiler beside it
)

// String returns the config/storage name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSlot:
		return "slot"
	case KindScaffold:
		return "scaffold"
	case KindHull:
		return "hull"
	case KindCastle:
		return "castle"
	case KindBoiler:
		return "boiler"
	case KindPropeller:
		return "propeller"
	default:
		return "unknown"
	}
}

// Label returns the build-menu display name.
func (k Kind) Label() string {
	switch k {
	case KindHull:
		return "Hull"
	case KindCastle:
		return "Castle"
	case KindBoiler:
		return "Boiler"
	case KindPropeller:
		return "Propeller"
	default:
		return k.String()
	}
}

// Def holds the static attributes of a module kind plus its placement
// predicate. Predicates examine neighbor solidity and presence only;
// the slot check and the edge-column rule live in Grid.CanPlace.
type Def struct {
	Kind      Kind
	Weight    float64
	Health    float64
	Fragility float64
	Buoyancy  float64
	Speed     float64
	Solid     bool

	CanPlace func(g *Grid, col, row int) bool
}

// DefTable resolves kinds to their definitions for one voyage.
type DefTable struct {
	defs map[Kind]Def
}

// buildable lists the player-constructible kinds in menu order.
var buildable = []Kind{KindHull, KindCastle, KindBoiler, KindPropeller}

// BuildDefs assembles the definition table from configuration.
// Unknown or missing config entries fall back to zero specs, which makes
// the kind unbuildable in practice rather than faulting.
func BuildDefs(cfg config.ShipConfig) *DefTable {
	t := &DefTable{defs: make(map[Kind]Def)}

	// Structural placeholders are fixed: a slot is weightless and
	// indestructible, a scaffold is light temporary clutter.
	t.defs[KindSlot] = Def{Kind: KindSlot}
	t.defs[KindScaffold] = Def{Kind: KindScaffold, Weight: 1}

	spec := func(name string) config.ModuleSpec { return cfg.Modules[name] }

	hull := spec("hull")
	t.defs[KindHull] = Def{
		Kind:      KindHull,
		Weight:    hull.Weight,
		Health:    hull.Health,
		Fragility: hull.Fragility,
		Buoyancy:  hull.Buoyancy,
		Speed:     hull.Speed,
		Solid:     hull.Solid,
		CanPlace: func(g *Grid, col, row int) bool {
			if row == 0 {
				// Base row extends sideways from existing structure.
				return g.SolidAt(col-1, 0) || g.SolidAt(col+1, 0)
			}
			return g.SolidAt(col, row-1)
		},
	}

	castle := spec("castle")
	t.defs[KindCastle] = Def{
		Kind:      KindCastle,
		Weight:    castle.Weight,
		Health:    castle.Health,
		Fragility: castle.Fragility,
		Buoyancy:  castle.Buoyancy,
		Speed:     castle.Speed,
		Solid:     castle.Solid,
		CanPlace: func(g *Grid, col, row int) bool {
			return row > 0 && g.SolidAt(col, row-1)
		},
	}

	boiler := spec("boiler")
	t.defs[KindBoiler] = Def{
		Kind:      KindBoiler,
		Weight:    boiler.Weight,
		Health:    boiler.Health,
		Fragility: boiler.Fragility,
		Buoyancy:  boiler.Buoyancy,
		Speed:     boiler.Speed,
		Solid:     boiler.Solid,
		CanPlace: func(g *Grid, col, row int) bool {
			return row > 0 && g.SolidAt(col, row-1)
		},
	}

	prop := spec("propeller")
	t.defs[KindPropeller] = Def{
		Kind:      KindPropeller,
		Weight:    prop.Weight,
		Health:    prop.Health,
		Fragility: prop.Fragility,
		Buoyancy:  prop.Buoyancy,
		Speed:     prop.Speed,
		Solid:     prop.Solid,
		CanPlace: func(g *Grid, col, row int) bool {
			return g.KindAt(col-1, row) == KindBoiler || g.KindAt(col+1, row) == KindBoiler
		},
	}

	return t
}

// Get returns the definition for a kind. Unknown kinds resolve to an
// inert zero def rather than faulting.
func (t *DefTable) Get(k Kind) Def {
	return t.defs[k]
}

// Buildable returns the player-constructible kinds in menu order.
func (t *DefTable) Buildable() []Kind {
	return buildable
}
