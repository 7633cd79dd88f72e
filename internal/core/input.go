package core

// Action represents a semantic input action, abstracted from physical key presses.
// Keyboard, numpad and mouse swipes all resolve to these.
type Action int

const (
	ActionNone     Action = iota
	ActionUp             // Up arrow, W, Z, numpad 8
	ActionDown           // Down arrow, S, numpad 2
	ActionLeft           // Left arrow, A, Q, numpad 4
	ActionRight          // Right arrow, D, numpad 6
	ActionConfirm        // Enter - activate selected menu item
	ActionBack           // Escape - pause, resume or leave game over
	ActionDismiss        // Space - end a ringing phone call
	ActionQuit           // Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionDismiss:
		return "Dismiss"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction for a directional action.
// The second result is false for non-directional actions.
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionUp:
		return DirUp, true
	case ActionDown:
		return DirDown, true
	case ActionLeft:
		return DirLeft, true
	case ActionRight:
		return DirRight, true
	}
	return DirRight, false
}
