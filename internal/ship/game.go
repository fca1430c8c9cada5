package ship

import (
	"fmt"

	"github.com/shipward/shipward/internal/config"
	"github.com/shipward/shipward/internal/core"
	"github.com/shipward/shipward/internal/registry"
)

// Game adapts a Session to the platform scene contract and owns the UI
// glue the simulation treats as external: the build menu and the sound
// player.
type Game struct {
	shipCfg *config.ShipConfig
	session *Session
	menu    *buildMenu

	runtime core.RuntimeConfig
	frameDt float64
}

// Package-level wiring set by the CLI before the platform creates the
// scene.
var (
	configPath       string
	difficultyPreset string
	soundPlayer      Sound
)

// SetConfigPath sets the ship config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset selects a difficulty preset applied on Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetSound installs the cue player used by new sessions.
func SetSound(s Sound) {
	soundPlayer = s
}

// New creates a new voyage scene.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("voyage", func() registry.Scene {
		return New()
	})
}

// ID returns the scene identifier.
func (g *Game) ID() string { return "voyage" }

// Title returns the display name.
func (g *Game) Title() string { return "Shipward" }

// Session exposes the live session for tests and the debug overlay.
func (g *Game) Session() *Session { return g.session }

// VoyageStats reports the finished voyage for score storage.
func (g *Game) VoyageStats() (distance, durationSecs, modulesBuilt int) {
	s := g.session
	return int(s.Distance), int(s.Elapsed), s.Built
}

// Reset starts a fresh voyage.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	shipCfg, err := config.LoadShip(configPath)
	if err != nil {
		shipCfg = config.DefaultShipConfig()
	}
	if difficultyPreset != "" {
		config.ApplyShipPreset(&shipCfg, config.DifficultyPreset(difficultyPreset))
	}
	g.shipCfg = &shipCfg

	g.runtime = cfg
	if cfg.FrameRate > 0 {
		g.frameDt = 1 / float64(cfg.FrameRate)
	} else {
		g.frameDt = 1.0 / 30
	}

	layout := NewLayout(cfg.ScreenW, cfg.ScreenH, shipCfg.Gameplay.Columns)
	g.session = NewSession(&shipCfg, cfg.Seed, soundPlayer, layout)
	g.menu = &buildMenu{}
	g.session.SetChooser(g.menu)
}

// Step advances the voyage by one tick. dt is measured wall-clock
// seconds; the session clamps oversized deltas itself.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	s := g.session

	if in.Has(core.ActionRestart) && s.Lost {
		next := g.runtime
		next.Seed = s.rng.Int63()
		g.Reset(next)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && s.Running {
		s.Paused = !s.Paused
		if s.Paused {
			g.menu.close(true)
		}
	}
	if in.Has(core.ActionDebug) {
		s.Debug = !s.Debug
	}
	if in.Has(core.ActionBack) {
		g.menu.close(true)
	}
	if in.Has(core.ActionConfirm) && g.menu.open {
		g.menu.pick(0)
	}

	if in.Motion {
		if !g.menu.open {
			s.PointerMove(in.MouseX, in.MouseY)
		}
	}
	if in.Click {
		if g.menu.open {
			g.menu.click(in.MouseX, in.MouseY)
		} else {
			s.Click(in.MouseX, in.MouseY)
		}
	}
	if in.Digit > 0 && g.menu.open {
		g.menu.pick(in.Digit - 1)
	}

	s.Tick(dt)

	return core.StepResult{State: g.State()}
}

// Render composites one frame: sky, entities, water, HUD, menu.
func (g *Game) Render(dst *core.Screen) {
	s := g.session
	l := s.layout

	drawBackground(dst, l, s.BackgroundDistance(g.frameDt))
	s.Reg.Render(dst)
	drawWater(dst, l, s.bgDistance, s.Elapsed)
	drawHUD(dst, s)
	if s.Debug {
		drawDebug(dst, s)
	}
	if s.Paused {
		centered(dst, l.ScreenH/2, "Paused - press space to continue", core.ColorWhite)
	}
	g.menu.render(dst)
}

// State reports score and flags for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.session.Distance),
		GameOver: g.session.Lost,
		Paused:   g.session.Paused,
	}
}

// buildMenu is the in-terminal stand-in for the build-choice dialog.
// It satisfies Chooser: the session hands it candidates and callbacks,
// and the scene routes clicks to it while open.
type buildMenu struct {
	open       bool
	box        core.Rect
	candidates []Kind
	confirm    func(Kind)
	cancel     func()
}

func (m *buildMenu) Choose(cell core.Rect, candidates []Kind, confirm func(Kind), cancel func()) {
	m.candidates = candidates
	m.confirm = confirm
	m.cancel = cancel
	m.open = true

	w := 16
	h := len(candidates) + 2
	x := cell.Right() + 1
	y := cell.Y - h/2
	m.box = core.NewRect(x, y, w, h)
}

// ClampTo keeps the menu box on screen.
func (m *buildMenu) clampTo(screenW, screenH int) {
	m.box.X = core.Clamp(m.box.X, 0, core.Max(0, screenW-m.box.W))
	m.box.Y = core.Clamp(m.box.Y, 2, core.Max(2, screenH-m.box.H))
}

// click confirms the item under the pointer or cancels on a miss.
func (m *buildMenu) click(x, y int) {
	if !m.open {
		return
	}
	if m.box.Contains(x, y) {
		m.pick(y - m.box.Y - 1)
		return
	}
	m.close(true)
}

// pick confirms candidate i; out-of-range picks are ignored.
func (m *buildMenu) pick(i int) {
	if !m.open || i < 0 || i >= len(m.candidates) {
		return
	}
	confirm := m.confirm
	kind := m.candidates[i]
	m.close(false)
	if confirm != nil {
		confirm(kind)
	}
}

func (m *buildMenu) close(cancelled bool) {
	if !m.open {
		return
	}
	cancel := m.cancel
	m.open = false
	m.candidates = nil
	m.confirm = nil
	m.cancel = nil
	if cancelled && cancel != nil {
		cancel()
	}
}

func (m *buildMenu) render(dst *core.Screen) {
	if !m.open {
		return
	}
	m.clampTo(dst.Width(), dst.Height())

	dst.DrawRect(m.box, ' ', core.ColorDefault)
	dst.DrawBox(m.box, core.ColorWhite)
	for i, k := range m.candidates {
		line := fmt.Sprintf("%d. %s", i+1, k.Label())
		dst.DrawTextColored(m.box.X+2, m.box.Y+1+i, line, core.ColorWhite)
	}
}
