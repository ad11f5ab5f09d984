package core

import "strings"

// Action is a semantic control action, abstracted from physical key presses.
// Typed glyph keys are NOT actions; they travel in InputFrame.Keys so the
// session can match them against falling bombs.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // menu navigation
	ActionDown           // menu navigation
	ActionConfirm        // Enter
	ActionBack           // Esc/B - leave current screen
	ActionRestart        // R after game over
	ActionQuit           // Ctrl+C
	ActionPause          // Esc while playing
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
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

// InputFrame is the input collected during one simulation tick: control
// actions plus the normalized key symbols the player typed. Key symbols are
// stored uppercased; the engine never sees raw key events.
type InputFrame struct {
	Actions map[Action]bool
	Keys    []string
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

// AddKey records a typed key symbol, normalized to uppercase.
func (f *InputFrame) AddKey(sym string) {
	if sym == "" {
		return
	}
	f.Keys = append(f.Keys, strings.ToUpper(sym))
}

// Clear resets all actions and typed keys for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Keys = f.Keys[:0]
}
