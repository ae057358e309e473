package core

// Action represents a semantic input, abstracted from physical key presses.
// The first four are held controls read by the simulation every frame;
// the rest are one-shot requests handled by the host.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionJump           // Space, W, Up - jump when grounded
	ActionRun            // X, Shift+arrow - run instead of walk
	ActionStart          // Enter - start a game
	ActionPause          // P, Escape - pause/unpause
	ActionRestart        // R - restart the current game
	ActionBack           // B - leave the game for the menu
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionJump:
		return "Jump"
	case ActionRun:
		return "Run"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsControl reports whether the action is a held control read by the
// simulation rather than a one-shot command.
func (a Action) IsControl() bool {
	switch a {
	case ActionLeft, ActionRight, ActionJump, ActionRun:
		return true
	default:
		return false
	}
}

// InputFrame is the Input State for one simulation tick: which controls are
// pressed. The host writes it; the simulation only reads it.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as pressed.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is pressed.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear releases every action.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Command is a zero-argument lifecycle trigger sent by the host.
type Command int

const (
	CommandStart       Command = iota // idle/over -> running
	CommandPauseToggle                // running <-> paused
	CommandRestart                    // any -> running, fresh world
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandPauseToggle:
		return "pause"
	case CommandRestart:
		return "restart"
	default:
		return "unknown"
	}
}
