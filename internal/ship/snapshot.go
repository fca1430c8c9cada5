package ship

// Snapshot captures voyage state for determinism testing. Float fields
// are stored as milli-units so hashes stay stable across platforms.
type Snapshot struct {
	Tick            uint64
	DraughtMilli    int
	DistanceMilli   int
	ElapsedMilli    int
	SpeedMilli      int
	CooldownMilli   int
	Running         bool
	Lost            bool
	PendingKind     int // -1 when nothing is pending
	PendingCol      int
	PendingRow      int
	PendingBuild    int
	Rows            int
	Cols            int
	EntityCount     int

	// Module states (each cell is 5 ints: Kind, DamageMilli,
	// FloodMilli, Repairing, TopCap), row-major from the base row.
	ModuleData []int
}

// Snapshot returns the current voyage state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          s.TickCount,
		DraughtMilli:  int(s.Draught * 1000),
		DistanceMilli: int(s.Distance * 1000),
		ElapsedMilli:  int(s.Elapsed * 1000),
		SpeedMilli:    int(s.Speed * 1000),
		CooldownMilli: int(s.Cooldown * 1000),
		Running:       s.Running,
		Lost:          s.Lost,
		PendingKind:   -1,
		Rows:          s.Grid.RowCount(),
		Cols:          s.Grid.Cols(),
		EntityCount:   s.Reg.Len(),
	}

	if s.Pending != nil {
		snap.PendingKind = int(s.Pending.Kind)
		snap.PendingCol = s.Pending.Col
		snap.PendingRow = s.Pending.Row
		snap.PendingBuild = int(s.Pending.Build)
	}

	snap.ModuleData = make([]int, 0, snap.Rows*snap.Cols*5)
	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			m := s.Grid.At(col, row)
			repairing, topCap := 0, 0
			if m.Repairing {
				repairing = 1
			}
			if m.TopCap {
				topCap = 1
			}
			snap.ModuleData = append(snap.ModuleData,
				int(m.Kind),
				int(m.Damage*1000),
				int(m.Flood*1000),
				repairing,
				topCap,
			)
		}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.DraughtMilli)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DistanceMilli) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ElapsedMilli)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpeedMilli)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CooldownMilli) //#nosec G115 -- hash computation
	if snap.Running {
		h = h*31 + 1
	}
	if snap.Lost {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.PendingKind+1) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingCol)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingRow)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingBuild)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rows)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Cols)          //#nosec G115 -- hash computation

	for _, v := range snap.ModuleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
