package ship

// Stats are the ship's aggregate physics inputs, summed fresh from live
// modules every tick and never cached across ticks.
type Stats struct {
	Weight   float64
	Buoyancy float64
	Speed    float64
}

// Grid is the ship: a fixed number of columns and a dynamically growing
// stack of rows. Every cell in an existing row holds a module (empty
// cells hold a buildable slot, never nil), so render and click logic
// never branch on missing cells. Out-of-range reads return nil and all
// callers treat that as "absent: not solid, no contribution".
type Grid struct {
	cols int
	rows [][]*Module
	defs *DefTable

	// created is invoked for every module the grid brings into
	// existence (initial slots, placements, row expansion), letting
	// the session mirror grid contents into the entity registry.
	created func(*Module)
}

// NewGrid creates a grid with the given column count and a single row of
// buildable slots.
func NewGrid(cols int, defs *DefTable) *Grid {
	g := &Grid{cols: cols, defs: defs}
	g.appendRow()
	return g
}

// OnCreate registers the module-creation hook. Modules already present
// are reported immediately so no cell escapes the mirror.
func (g *Grid) OnCreate(fn func(*Module)) {
	g.created = fn
	if fn == nil {
		return
	}
	for _, row := range g.rows {
		for _, m := range row {
			fn(m)
		}
	}
}

// Cols returns the fixed column count.
func (g *Grid) Cols() int { return g.cols }

// RowCount returns the number of allocated rows, including the top
// all-slot row.
func (g *Grid) RowCount() int { return len(g.rows) }

// At returns the module at (col, row), or nil when out of range.
func (g *Grid) At(col, row int) *Module {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= g.cols {
		return nil
	}
	return g.rows[row][col]
}

// KindAt returns the kind at (col, row); absent cells report KindSlot's
// negative: they are no particular kind, so -1.
func (g *Grid) KindAt(col, row int) Kind {
	m := g.At(col, row)
	if m == nil {
		return Kind(-1)
	}
	return m.Kind
}

// SolidAt reports whether (col, row) holds a solid module. Absent is
// never solid.
func (g *Grid) SolidAt(col, row int) bool {
	m := g.At(col, row)
	return m != nil && m.Solid
}

// IsEdge reports whether col is an outermost column, which may never
// hold a solid module.
func (g *Grid) IsEdge(col int) bool {
	return col == 0 || col == g.cols-1
}

// CanPlace reports whether a module of the given kind may be placed at
// (col, row): the cell must currently be a buildable slot, solid kinds
// must stay off the edge columns, and the kind's placement predicate
// must hold.
func (g *Grid) CanPlace(kind Kind, col, row int) bool {
	m := g.At(col, row)
	if m == nil || m.Kind != KindSlot {
		return false
	}
	def := g.defs.Get(kind)
	if def.Solid && g.IsEdge(col) {
		return false
	}
	if def.CanPlace == nil {
		return false
	}
	return def.CanPlace(g, col, row)
}

// Candidates returns the buildable kinds currently legal at (col, row),
// in menu order. An empty result means a click there opens no menu.
func (g *Grid) Candidates(col, row int) []Kind {
	var kinds []Kind
	for _, k := range g.defs.Buildable() {
		if g.CanPlace(k, col, row) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Place validates and installs a module of the given kind at (col, row).
// Returns nil if placement is not legal. On success the grid grows a
// fresh slot row above if the top row was reached, and the display flags
// of the four orthogonal neighbors are refreshed.
func (g *Grid) Place(kind Kind, col, row int) *Module {
	if !g.CanPlace(kind, col, row) {
		return nil
	}
	return g.put(kind, col, row, true)
}

// PutScaffold swaps a slot for an under-construction placeholder without
// structural side effects. The real module replaces it via Finalize.
func (g *Grid) PutScaffold(col, row int) *Module {
	m := g.At(col, row)
	if m == nil || m.Kind != KindSlot {
		return nil
	}
	return g.put(KindScaffold, col, row, false)
}

// Finalize replaces the scaffold at (col, row) with the finished module.
// Returns nil if the cell no longer holds a scaffold.
func (g *Grid) Finalize(kind Kind, col, row int) *Module {
	m := g.At(col, row)
	if m == nil || m.Kind != KindScaffold {
		return nil
	}
	return g.put(kind, col, row, true)
}

// put installs a module unconditionally. structural placements expand
// the grid and refresh neighbor display flags.
func (g *Grid) put(kind Kind, col, row int, structural bool) *Module {
	m := newModule(g.defs.Get(kind), col, row)
	g.rows[row][col] = m
	if g.created != nil {
		g.created(m)
	}

	if structural {
		// Keep a buildable row above the highest structure.
		if row == len(g.rows)-1 {
			g.appendRow()
		}
		g.RefreshDisplay(col, row)
		g.refreshNeighbors(col, row)
	}
	return m
}

// Seed installs a module at (col, row) bypassing placement predicates.
// Used for the starting hull, which has nothing to attach to yet.
func (g *Grid) Seed(kind Kind, col, row int) *Module {
	for row >= len(g.rows) {
		g.appendRow()
	}
	return g.put(kind, col, row, true)
}

// appendRow adds a fully populated row of buildable slots on top.
func (g *Grid) appendRow() {
	row := len(g.rows)
	slots := make([]*Module, g.cols)
	slotDef := g.defs.Get(KindSlot)
	for col := range slots {
		slots[col] = newModule(slotDef, col, row)
		if g.created != nil {
			g.created(slots[col])
		}
	}
	g.rows = append(g.rows, slots)
}

// RefreshDisplay recomputes the display flags of the cell from current
// grid contents. Idempotent: recomputing twice yields the same flags.
func (g *Grid) RefreshDisplay(col, row int) {
	m := g.At(col, row)
	if m == nil {
		return
	}
	m.TopCap = m.Solid && !g.SolidAt(col, row+1)
}

// refreshNeighbors refreshes the four orthogonal neighbors of (col, row).
func (g *Grid) refreshNeighbors(col, row int) {
	g.RefreshDisplay(col-1, row)
	g.RefreshDisplay(col+1, row)
	g.RefreshDisplay(col, row-1)
	g.RefreshDisplay(col, row+1)
}

// CastleAdjacent reports whether a castle occupies a cell orthogonally
// adjacent to (col, row). Derived on demand, never stored.
func (g *Grid) CastleAdjacent(col, row int) bool {
	return g.KindAt(col-1, row) == KindCastle ||
		g.KindAt(col+1, row) == KindCastle ||
		g.KindAt(col, row-1) == KindCastle ||
		g.KindAt(col, row+1) == KindCastle
}

// Aggregate sums weight, buoyancy, and speed across all modules for the
// given draught. Called once per tick; results are never reused across
// tick boundaries because module state changes continuously.
func (g *Grid) Aggregate(draught float64) Stats {
	var st Stats
	for _, row := range g.rows {
		for _, m := range row {
			st.Weight += m.Weight
			st.Buoyancy += m.BuoyancyAt(draught)
			st.Speed += m.SpeedContribution()
		}
	}
	return st
}

// HeightRows counts rows containing at least one real module (anything
// but a bare slot). Ship height for the loss check is this count in
// module-height units.
func (g *Grid) HeightRows() int {
	h := 0
	for _, row := range g.rows {
		for _, m := range row {
			if m.Kind != KindSlot {
				h++
				break
			}
		}
	}
	return h
}
