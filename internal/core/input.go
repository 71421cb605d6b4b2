package core

import "unicode"

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W - move ship up, menu cursor up
	ActionDown           // S - move ship down, menu cursor down
	ActionLeft           // A - move ship left
	ActionRight          // D - move ship right
	ActionConfirm        // Enter - confirm menu selection
	ActionNext           // N - advance to the next level
	ActionReplay         // R - replay from level one
	ActionMenu           // M - return to menu
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
	case ActionNext:
		return "Next"
	case ActionReplay:
		return "Replay"
	case ActionMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// ActionForKey maps a polled character to an action. Letters are case-insensitive.
func ActionForKey(r rune) Action {
	switch unicode.ToLower(r) {
	case 'w':
		return ActionUp
	case 's':
		return ActionDown
	case 'a':
		return ActionLeft
	case 'd':
		return ActionRight
	case '\r', '\n':
		return ActionConfirm
	case 'n':
		return ActionNext
	case 'r':
		return ActionReplay
	case 'm':
		return ActionMenu
	}
	return ActionNone
}

// InputFrame represents the input state during one simulation tick.
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

// FrameForKey builds the input frame for a single polled character.
func FrameForKey(r rune, ok bool) InputFrame {
	f := NewInputFrame()
	if ok {
		f.Set(ActionForKey(r))
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
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
