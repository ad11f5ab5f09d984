package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yuchenlin/typebomb/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Bindings are phase-aware: while bombs are falling almost every printable
// key is a glyph guess (q and p are playable glyphs), so only ctrl+c quits
// and esc pauses. The friendlier letter bindings come back outside play.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapMenuKey translates a key to a mode-menu action.
func (km *KeyMapper) MapMenuKey(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}

// MapPlayKey updates an input frame for a key pressed during play.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapPlayKey(msg tea.KeyMsg, frame *core.InputFrame) bool {
	switch msg.String() {
	case "ctrl+c":
		return true
	case "esc":
		frame.Set(core.ActionPause)
		return false
	}

	if sym, ok := KeySymbol(msg); ok {
		frame.AddKey(sym)
	}
	return false
}

// MapPausedKey translates a key pressed while paused.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapPausedKey(msg tea.KeyMsg) (core.Action, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "esc", "p":
		return core.ActionPause, false
	case "b":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapEndedKey translates a key on the game-over board, after name entry.
func (km *KeyMapper) MapEndedKey(msg tea.KeyMsg) (core.Action, bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "r":
		return core.ActionRestart, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// KeySymbol extracts the printable symbol of a plain keystroke, if any.
// Modified keys and special keys carry no symbol.
func KeySymbol(msg tea.KeyMsg) (string, bool) {
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 {
		return string(msg.Runes[0]), true
	}
	return "", false
}
