package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shipward/shipward/internal/core"
	"github.com/shipward/shipward/internal/registry"
	"github.com/shipward/shipward/internal/storage"
)

// voyageReporter is implemented by scenes that can describe a finished
// voyage in more detail than the plain score.
type voyageReporter interface {
	VoyageStats() (distance, durationSecs, modulesBuilt int)
}

// Model is the Bubble Tea model running one scene. It owns the two
// clocks: a fixed-rate simulation tick whose real elapsed delta is
// measured against the previous tick's timestamp, and an independent
// render frame.
type Model struct {
	scene      registry.Scene
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	sceneState core.GameState
	keyMapper  *KeyMapper

	lastTick    time.Time
	quitting    bool
	voyageSaved bool
}

// NewModel creates a new Bubble Tea model for the given scene.
func NewModel(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		scene:      scene,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		lastTick:   time.Now(),
	}
}

// Init initializes the model and starts both clocks.
func (m Model) Init() tea.Cmd {
	m.scene.Reset(m.config)
	return tea.Batch(
		simTickCmd(m.config.TickRate),
		frameCmd(m.config.FrameRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		m.keyMapper.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case SimTickMsg:
		return m.handleTick(time.Time(msg))

	case FrameMsg:
		// Returning the model is enough; Bubble Tea re-renders View.
		return m, frameCmd(m.config.FrameRate)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Layout depends on screen size, so a resize restarts the voyage
	// unless it is already over.
	if !m.sceneState.GameOver {
		m.scene.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one simulation step with the measured wall-clock
// delta. The scene clamps oversized deltas itself.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := now.Sub(m.lastTick).Seconds()
	m.lastTick = now

	if m.inputFrame.Has(core.ActionRestart) && m.sceneState.GameOver {
		m.voyageSaved = false
	}

	result := m.scene.Step(m.inputFrame, dt)
	m.sceneState = result.State

	// Save the voyage once per loss.
	if m.sceneState.GameOver && !m.voyageSaved && m.sceneState.Score > 0 {
		if m.store != nil {
			m.saveVoyage()
		}
		m.voyageSaved = true
	}

	m.inputFrame.Clear()

	return m, simTickCmd(m.config.TickRate)
}

func (m *Model) saveVoyage() {
	distance := m.sceneState.Score
	duration, built := 0, 0
	if r, ok := m.scene.(voyageReporter); ok {
		distance, duration, built = r.VoyageStats()
	}
	//nolint:errcheck // Best-effort save, session continues regardless
	m.store.SaveVoyage(m.scene.ID(), distance, duration, built)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.scene.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(scene registry.Scene, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(scene, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer position and clicks
	)

	_, err := p.Run()
	return err
}
