package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation and menus to work with high-level intents rather
// than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // A, H, Left arrow - move one lane left
	ActionRight              // D, L, Right arrow - move one lane right
	ActionUp                 // W, Up arrow, k - menu navigation
	ActionDown               // S, Down arrow, j - menu navigation
	ActionConfirm            // Enter - confirm selection
	ActionBack               // Escape - go back to menu
	ActionRestart            // R - restart after game over
	ActionLeaderboard        // Tab - open leaderboard
	ActionShop               // T - open trail shop
	ActionQuit               // Q, Ctrl+C - exit
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionLeaderboard:
		return "Leaderboard"
	case ActionShop:
		return "Shop"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two simulation ticks.
type InputFrame struct {
	// Actions lists triggered actions in arrival order. Lane changes are
	// discrete, so two Left presses within one frame move two lanes.
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make([]Action, 0, 4),
	}
}

// Push records an action for this frame.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
