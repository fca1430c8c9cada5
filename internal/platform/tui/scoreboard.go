package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shipward/shipward/internal/storage"
)

const maxVoyages = 100

// ScoreboardKeyMap defines the key bindings for the voyage log.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the voyage log screen.
type ScoreboardModel struct {
	store    *storage.Store
	sceneID  string
	voyages  []storage.VoyageEntry
	stats    storage.VoyageStats
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new voyage log model.
func NewScoreboardModel(store *storage.Store, sceneID string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:   store,
		sceneID: sceneID,
		keys:    DefaultScoreboardKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}

	m.table = m.createTable()
	m.loadVoyages()
	return m
}

// createTable creates the voyage table.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Distance", Width: 10},
		{Title: "Duration", Width: 10},
		{Title: "Built", Width: 7},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadVoyages loads the recorded voyages and aggregate stats.
func (m *ScoreboardModel) loadVoyages() {
	if m.store == nil {
		m.voyages = nil
		m.updateTableRows()
		return
	}

	voyages, err := m.store.TopVoyages(m.sceneID, maxVoyages)
	if err != nil {
		m.voyages = nil
	} else {
		m.voyages = voyages
	}
	if stats, err := m.store.Stats(m.sceneID); err == nil {
		m.stats = stats
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current voyages.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.voyages))
	for i, v := range m.voyages {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", v.Distance),
			fmt.Sprintf("%dm%02ds", v.DurationSecs/60, v.DurationSecs%60),
			fmt.Sprintf("%d", v.ModulesBuilt),
			v.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the voyage log model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the voyage log.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the voyage log.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("VOYAGE LOG", m.width)))
	b.WriteString("\n")

	subStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sub := fmt.Sprintf("%d voyages | best distance %d", m.stats.Voyages, m.stats.BestDistance)
	b.WriteString(subStyle.Render(centerText(sub, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.voyages) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(centerText(emptyStyle.Render("No voyages recorded yet.\nSet sail to make history!"), m.width))
	} else {
		b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	}

	b.WriteString("\n")
	b.WriteString(subStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// centerText centers a (possibly multi-line) block within the width.
func centerText(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		pad := (width - lipgloss.Width(line)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + line
		}
	}
	return strings.Join(lines, "\n")
}

// RunScoreboard runs the voyage log screen.
func RunScoreboard(store *storage.Store, sceneID string, width, height int) error {
	model := NewScoreboardModel(store, sceneID, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
