package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, h - move cursor along the horizontal axis
	ActionRight            // Right arrow, l
	ActionUp               // Up arrow, k - move cursor along the vertical axis
	ActionDown             // Down arrow, j
	ActionLayerDown        // [ - step the focused fixed axis down
	ActionLayerUp          // ] - step the focused fixed axis up
	ActionNextAxis         // Tab - focus the next fixed axis
	ActionSwapView         // v - rotate the displayed axis pair
	ActionReveal           // Space, Enter - reveal the cell under the cursor
	ActionFlag             // f - toggle a flag
	ActionChord            // c - chord a satisfied number
	ActionRestart          // r - new game with the same preset
	ActionQuit             // q, Ctrl+C - exit game/session
	ActionPause            // p - pause/unpause the clock
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLayerDown:
		return "LayerDown"
	case ActionLayerUp:
		return "LayerUp"
	case ActionNextAxis:
		return "NextAxis"
	case ActionSwapView:
		return "SwapView"
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionChord:
		return "Chord"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
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

// Empty returns true if no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
