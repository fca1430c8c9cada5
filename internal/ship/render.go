package ship

import (
	"fmt"
	"math"

	"github.com/shipward/shipward/internal/core"
)

// Layout maps grid coordinates to screen cells. The ship is drawn
// centered, sitting on a waterline near the bottom of the screen, and
// sinks visually as draught grows.
type Layout struct {
	ScreenW, ScreenH int
	ModuleW, ModuleH int
	ShipLeft         int
	WaterY           int
}

// NewLayout computes a layout for the given screen size and column
// count.
func NewLayout(screenW, screenH, cols int) Layout {
	l := Layout{
		ScreenW: screenW,
		ScreenH: screenH,
		ModuleW: 7,
		ModuleH: 3,
	}
	if cols*l.ModuleW > screenW {
		l.ModuleW = core.Max(3, screenW/core.Max(1, cols))
	}
	l.ShipLeft = (screenW - cols*l.ModuleW) / 2
	l.WaterY = screenH - 6
	return l
}

// CellRect returns the screen rectangle of cell (col, row) at the given
// draught. Row 0 sits at the waterline when draught is zero and slides
// below it as the ship settles.
func (l Layout) CellRect(col, row int, draught float64) core.Rect {
	x := l.ShipLeft + col*l.ModuleW
	sink := int(math.Round(draught * float64(l.ModuleH)))
	y := l.WaterY + sink - (row+1)*l.ModuleH
	return core.NewRect(x, y, l.ModuleW, l.ModuleH)
}

// drawModule renders one grid cell. Appearance is driven by kind,
// damage level, flood, and hover state.
func drawModule(dst *core.Screen, s *Session, m *Module, hovered bool) {
	r := s.layout.CellRect(m.Col, m.Row, s.Draught)

	switch m.Kind {
	case KindSlot:
		drawSlot(dst, s, m, r, hovered)
	case KindScaffold:
		drawScaffold(dst, r)
	default:
		drawBuilt(dst, s, m, r, hovered)
	}
}

// drawSlot marks a buildable cell with corner ticks, brightened under
// the pointer. Cells with no legal placement draw nothing at all.
func drawSlot(dst *core.Screen, s *Session, m *Module, r core.Rect, hovered bool) {
	if len(s.Grid.Candidates(m.Col, m.Row)) == 0 {
		return
	}
	c := core.ColorDarkGray
	if hovered {
		c = core.ColorYellow
	}
	dst.SetCell(r.X, r.Y, '·', c)
	dst.SetCell(r.Right()-1, r.Y, '·', c)
	dst.SetCell(r.X, r.Bottom()-1, '·', c)
	dst.SetCell(r.Right()-1, r.Bottom()-1, '·', c)
	if hovered {
		cx, cy := r.Center()
		dst.SetCell(cx, cy, '+', c)
	}
}

func drawScaffold(dst *core.Screen, r core.Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if (x+y)%2 == 0 {
				dst.SetCell(x, y, '#', core.ColorDarkGray)
			}
		}
	}
}

func drawBuilt(dst *core.Screen, s *Session, m *Module, r core.Rect, hovered bool) {
	body, c := moduleFace(m)
	switch m.Level() {
	case LevelDamaged:
		c = core.ColorYellow
	case LevelBroken:
		c = core.ColorRed
	}
	if m.Repairing {
		c = core.ColorGreen
	}

	dst.DrawRect(r, body, c)
	dst.DrawBox(r, c)

	if m.TopCap {
		dst.DrawHLine(r.X, r.Y, r.W, '▔', c)
	}

	// Flood fill rises from the bottom of a broken flotation module.
	if m.Flood > 0 && m.Buoyancy > 0 {
		rows := int(math.Ceil(m.Flood / m.Buoyancy * float64(r.H)))
		for y := r.Bottom() - rows; y < r.Bottom(); y++ {
			dst.DrawHLine(r.X+1, y, r.W-2, '≈', core.ColorBlue)
		}
	}

	cx, cy := r.Center()
	dst.SetCell(cx, cy, moduleGlyph(m), c)
	if m.Repairing {
		dst.SetCell(cx, r.Y, '⚒', core.ColorGreen)
	}
	if hovered && m.Broken() && !m.Repairing {
		dst.DrawTextColored(r.X+1, r.Bottom()-1, "fix?", core.ColorWhite)
	}
}

// moduleFace returns the fill rune and resting color per kind.
func moduleFace(m *Module) (rune, core.Color) {
	switch m.Kind {
	case KindHull:
		return ' ', core.ColorBrown
	case KindCastle:
		return ' ', core.ColorGray
	case KindBoiler:
		return ' ', core.ColorDarkGray
	case KindPropeller:
		return ' ', core.ColorCyan
	default:
		return ' ', core.ColorDefault
	}
}

func moduleGlyph(m *Module) rune {
	switch m.Kind {
	case KindHull:
		return '▣'
	case KindCastle:
		return '♜'
	case KindBoiler:
		return '♨'
	case KindPropeller:
		return '✣'
	default:
		return '?'
	}
}

// drawBackground paints the sky and two parallax cloud layers advancing
// with the smoothed background distance.
func drawBackground(dst *core.Screen, l Layout, bgDistance float64) {
	// Far layer moves slow, near layer faster.
	far := int(bgDistance * 0.15)
	near := int(bgDistance * 0.4)

	for i := 0; i < l.ScreenW/16+2; i++ {
		x := (i*16 - far%16) % (l.ScreenW + 8)
		drawCloud(dst, x, 2+(i%3), core.ColorDarkGray)
	}
	for i := 0; i < l.ScreenW/24+2; i++ {
		x := (i*24 - near%24) % (l.ScreenW + 12)
		drawCloud(dst, x, 5+(i%2)*2, core.ColorGray)
	}
}

func drawCloud(dst *core.Screen, x, y int, c core.Color) {
	dst.DrawTextColored(x, y, "~~~", c)
	dst.DrawTextColored(x-1, y+1, "~~~~~", c)
}

// drawWater paints the waterline and the sea below it, flowing past at
// the background rate. Only blank cells are painted so submerged
// modules stay visible through the water.
func drawWater(dst *core.Screen, l Layout, bgDistance, elapsed float64) {
	phase := int(bgDistance*2 + elapsed)
	for y := l.WaterY; y < l.ScreenH; y++ {
		for x := 0; x < l.ScreenW; x++ {
			if dst.Get(x, y) != ' ' {
				continue
			}
			if y == l.WaterY {
				if (x+phase)%3 == 0 {
					dst.SetCell(x, y, '≈', core.ColorCyan)
				} else {
					dst.SetCell(x, y, '~', core.ColorBlue)
				}
				continue
			}
			if (x+y*3+phase)%7 == 0 {
				dst.SetCell(x, y, '·', core.ColorBlue)
			}
		}
	}
}

// drawHUD paints the top status bar: distance, speed, draught, and the
// cooldown gauge.
func drawHUD(dst *core.Screen, s *Session) {
	hud := fmt.Sprintf(" Shipward | Distance: %d  Speed: %.1f  Draught: %.1f",
		int(s.Distance), s.Speed, s.Draught)
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)

	gauge := cooldownGauge(s)
	dst.DrawTextColored(s.layout.ScreenW-len(gauge)-1, 0, gauge, gaugeColor(s))

	dst.DrawHLine(0, 1, s.layout.ScreenW, '─', core.ColorDarkGray)
}

func cooldownGauge(s *Session) string {
	if !s.Busy() {
		return "[ready]"
	}
	total := float64(s.cfg.Gameplay.CooldownMS) / 1000
	frac := 1 - s.Cooldown/total
	filled := int(frac * 8)
	bar := make([]rune, 8)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '-'
		}
	}
	return "[" + string(bar) + "]"
}

func gaugeColor(s *Session) core.Color {
	if s.Busy() {
		return core.ColorYellow
	}
	return core.ColorGreen
}

// drawDebug paints the debug overlay with the raw physics numbers.
func drawDebug(dst *core.Screen, s *Session) {
	lines := []string{
		fmt.Sprintf("tick %d  elapsed %.1fs", s.TickCount, s.Elapsed),
		fmt.Sprintf("weight %.1f  buoyancy %.1f", s.LastStats.Weight, s.LastStats.Buoyancy),
		fmt.Sprintf("draught %.2f  height %d", s.Draught, s.Grid.HeightRows()),
		fmt.Sprintf("difficulty x%.2f", s.Difficulty()),
		fmt.Sprintf("entities %d", s.Reg.Len()),
	}
	for i, line := range lines {
		dst.DrawTextColored(1, 3+i, line, core.ColorMagenta)
	}
}
