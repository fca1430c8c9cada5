package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/shipward/shipward/internal/core"
)

// KeyMapper translates Bubble Tea key messages to scene actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case " ", "p":
		return core.ActionPause, false
	case "`", "d":
		return core.ActionDebug, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message, including
// the digit keys used for build-menu selection.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	key := msg.String()
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		frame.Digit = int(key[0] - '0')
		return false
	}

	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame updates an input frame from a mouse message.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			frame.SetClick(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		frame.SetMotion(msg.X, msg.Y)
	}
}
