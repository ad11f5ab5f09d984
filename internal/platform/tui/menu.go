package tui

import (
	"fmt"
	"strings"

	"github.com/yuchenlin/typebomb/internal/game"
	"github.com/yuchenlin/typebomb/internal/storage"
)

// menuItem represents a selectable character mode in the menu.
type menuItem struct {
	mode  game.Mode
	title string
	high  int
}

// modeMenu is the mode picker shown before a session starts. It is a plain
// component driven by the top-level Model, not a separate program.
type modeMenu struct {
	items  []menuItem
	cursor int
}

// newModeMenu builds the menu over all playable modes. The store may be nil;
// high scores then show as zero.
func newModeMenu(store *storage.Store) modeMenu {
	modes := game.Modes()
	items := make([]menuItem, 0, len(modes))
	for _, m := range modes {
		items = append(items, menuItem{mode: m, title: m.Title()})
	}

	menu := modeMenu{items: items}
	menu.refresh(store)
	return menu
}

// refresh reloads the per-mode high scores, e.g. after a finished session.
func (m *modeMenu) refresh(store *storage.Store) {
	if store == nil {
		return
	}
	for i := range m.items {
		high, err := store.HighScore(m.items[i].mode)
		if err != nil {
			continue
		}
		m.items[i].high = high
	}
}

func (m *modeMenu) up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *modeMenu) down() {
	if m.cursor < len(m.items)-1 {
		m.cursor++
	}
}

// selected returns the mode under the cursor.
func (m *modeMenu) selected() game.Mode {
	return m.items[m.cursor].mode
}

// view renders the menu centered in the given width.
func (m *modeMenu) view(width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T Y P E B O M B", width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Type the key before the bomb hits the floor", width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s", cursor, item.title)
		if item.high > 0 {
			line = fmt.Sprintf("%s  (best: %d)", line, item.high)
		}
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, width))
	b.WriteString("\n")

	return b.String()
}
