package core

// Action represents a semantic game action, abstracted from physical key presses.
// Hosts translate keys into actions so the game never sees raw input.
type Action int

const (
	ActionNone Action = iota
	ActionPlay        // P - start or restart a round (menu and game over screens)
	ActionQuit        // Q - leave the game (menu and game over screens)
	ActionFlap        // Space - upward impulse while playing
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPlay:
		return "Play"
	case ActionQuit:
		return "Quit"
	case ActionFlap:
		return "Flap"
	default:
		return "Unknown"
	}
}

// InputFrame is everything the host hands the game for one tick:
// the time since the previous tick and at most one action.
type InputFrame struct {
	// ElapsedMs is the wall time since the previous tick, in milliseconds.
	ElapsedMs float64

	// Action is the most recent key press of this frame, if any.
	Action Action
}

// NewInputFrame creates an input frame with the given elapsed time and no action.
func NewInputFrame(elapsedMs float64) InputFrame {
	return InputFrame{ElapsedMs: elapsedMs}
}

// Set records an action for this frame. A later key replaces an earlier one.
func (f *InputFrame) Set(a Action) {
	f.Action = a
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.Action == a
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Action = ActionNone
	f.ElapsedMs = 0
}
