package core

// Action represents a semantic game action, abstracted from physical key
// presses. Movement actions carry press/release edges so the simulation can
// translate held keys into velocity intents; command actions are one-shot.
type Action int

const (
	ActionNone Action = iota

	// Movement intents (press/release edges)
	ActionLeftUp    // W - left paddle up
	ActionLeftDown  // S - left paddle down
	ActionRightUp   // Up arrow - right paddle up
	ActionRightDown // Down arrow - right paddle down

	// One-shot commands
	ActionPause    // P - pause/unpause
	ActionRestart  // R - abandon match, back to menu
	ActionQuit     // Q, Esc, Ctrl+C - exit
	ActionMenuUp   // Menu navigation up
	ActionMenuDown // Menu navigation down
	ActionConfirm  // Enter - confirm menu selection
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionMenuUp:
		return "MenuUp"
	case ActionMenuDown:
		return "MenuDown"
	case ActionConfirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input edges that occurred during one simulation
// tick. Press and release are tracked separately so the session can maintain
// held-key state across frames.
type InputFrame struct {
	Pressed  map[Action]bool
	Released map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed:  make(map[Action]bool),
		Released: make(map[Action]bool),
	}
}

// Press records a press edge for this frame.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Release records a release edge for this frame.
func (f *InputFrame) Release(a Action) {
	if f.Released == nil {
		f.Released = make(map[Action]bool)
	}
	f.Released[a] = true
}

// WasPressed reports whether a press edge occurred this frame.
func (f InputFrame) WasPressed(a Action) bool {
	return f.Pressed[a]
}

// WasReleased reports whether a release edge occurred this frame.
func (f InputFrame) WasReleased(a Action) bool {
	return f.Released[a]
}

// Clear resets all edges for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
	for k := range f.Released {
		delete(f.Released, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Released {
		clone.Released[k] = v
	}
	return clone
}
