// Package tui provides the Bubble Tea integration for shipward.
// It handles the terminal UI loop, input mapping, and scene orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SimTickMsg drives the fixed-interval simulation clock. The timestamp
// is kept so the model can measure the real elapsed delta; a terminal
// stalled in the background produces one oversized delta, which the
// simulation clamps.
type SimTickMsg time.Time

// FrameMsg drives the render clock, independent of the simulation
// cadence.
type FrameMsg time.Time

// simTickCmd schedules the next simulation tick at the given rate.
func simTickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return SimTickMsg(t)
	})
}

// frameCmd schedules the next render frame at the given rate.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
