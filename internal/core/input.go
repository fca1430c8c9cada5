package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // Space, P - pause/unpause the voyage
	ActionDebug          // backtick - toggle the debug overlay
	ActionConfirm        // Enter - confirm selection in the build menu
	ActionBack           // Esc - cancel the build menu
	ActionRestart        // R key - restart after the ship goes down
	ActionQuit           // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionDebug:
		return "Debug"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick:
// the key actions triggered since the previous tick plus the pointer state.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Digit is the last number key pressed this frame (1-9), or 0.
	// Used for build-menu selection.
	Digit int

	// Pointer state. MouseX/MouseY always hold the last known pointer
	// cell; Click and Motion report whether the pointer was pressed or
	// moved during this frame.
	MouseX, MouseY int
	Click          bool
	Motion         bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		MouseX:  -1,
		MouseY:  -1,
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetClick records a pointer press at the given cell.
func (f *InputFrame) SetClick(x, y int) {
	f.MouseX, f.MouseY = x, y
	f.Click = true
}

// SetMotion records a pointer move to the given cell.
func (f *InputFrame) SetMotion(x, y int) {
	f.MouseX, f.MouseY = x, y
	f.Motion = true
}

// Clear resets all actions and pointer edges for the next frame.
// The last pointer position is kept so hover state survives quiet frames.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Digit = 0
	f.Click = false
	f.Motion = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Digit = f.Digit
	clone.MouseX = f.MouseX
	clone.MouseY = f.MouseY
	clone.Click = f.Click
	clone.Motion = f.Motion
	return clone
}
