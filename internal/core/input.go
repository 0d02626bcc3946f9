package core

// Action represents a semantic input, abstracted from physical keys, buttons or touches.
type Action int

const (
	ActionNone       Action = iota
	ActionFlap              // Space, Up, W, Enter, pointer press, touch start
	ActionQuit              // Q, Ctrl+C, window close
	ActionScreenshot        // Ctrl+S in the terminal
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two frames.
// Each discrete press is counted so that two presses in one frame produce two activations.
type InputFrame struct {
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Add records one occurrence of an action.
func (f *InputFrame) Add(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Has returns true if the action was triggered at least once this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
