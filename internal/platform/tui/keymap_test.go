package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shipward/shipward/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	if s == "esc" {
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	if s == "ctrl+c" {
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyBindings(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{" ", core.ActionPause, false},
		{"p", core.ActionPause, false},
		{"d", core.ActionDebug, false},
		{"enter", core.ActionConfirm, false},
		{"esc", core.ActionBack, false},
		{"b", core.ActionBack, false},
		{"r", core.ActionRestart, false},
		{"x", core.ActionNone, false},
	}

	for _, c := range cases {
		action, quit := km.MapKey(keyMsg(c.key))
		if action != c.action || quit != c.quit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", c.key, action, quit, c.action, c.quit)
		}
	}
}

func TestMapKeyToFrameDigits(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("3"), &frame) {
		t.Error("Digit key should not quit")
	}
	if frame.Digit != 3 {
		t.Errorf("Digit = %d, want 3", frame.Digit)
	}

	// Zero is not a menu digit.
	frame.Clear()
	km.MapKeyToFrame(keyMsg("0"), &frame)
	if frame.Digit != 0 {
		t.Errorf("Digit after '0' = %d, want 0", frame.Digit)
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapMouseToFrame(tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
		X:      12, Y: 5,
	}, &frame)
	if !frame.Click || frame.MouseX != 12 || frame.MouseY != 5 {
		t.Errorf("Left press should record a click, got %+v", frame)
	}

	frame.Clear()
	km.MapMouseToFrame(tea.MouseMsg{
		Action: tea.MouseActionMotion,
		X:      3, Y: 4,
	}, &frame)
	if !frame.Motion || frame.MouseX != 3 {
		t.Errorf("Motion should record pointer movement, got %+v", frame)
	}

	// Right button press is ignored.
	frame.Clear()
	km.MapMouseToFrame(tea.MouseMsg{
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonRight,
		X:      9, Y: 9,
	}, &frame)
	if frame.Click {
		t.Error("Right press must not record a click")
	}
}

func TestRenderScreenJoinsRows(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.Set(0, 0, 'a')
	s.SetCell(1, 0, 'b', core.ColorRed)
	s.Set(0, 1, 'c')

	out := RenderScreen(s)
	lines := 1
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("RenderScreen produced %d lines, want 2", lines)
	}
}
