// Package game implements the typebomb engine: falling bombs bearing target
// glyphs, keystroke matching across character modes, difficulty progression,
// and the session state machine. The package is pure logic with no terminal
// or storage dependencies, in the same spirit as a platform-free game core.
package game

import (
	"fmt"
	"strings"
)

// Mode selects the character set the player types against.
type Mode string

const (
	// ModeLatin uses letters and digits; the required key is the glyph itself.
	ModeLatin Mode = "latin"
	// ModeZhuyin uses Bopomofo phonetic glyphs; the required key follows the
	// standard Zhuyin keyboard layout (ㄅ on 1, ㄆ on Q, and so on).
	ModeZhuyin Mode = "zhuyin"
)

// Modes returns all playable modes in display order.
func Modes() []Mode {
	return []Mode{ModeLatin, ModeZhuyin}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	return m == ModeLatin || m == ModeZhuyin
}

// Title returns a human-readable name for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeLatin:
		return "Letters & Digits"
	case ModeZhuyin:
		return "Zhuyin (Bopomofo)"
	default:
		return string(m)
	}
}

var latinGlyphs = strings.Split(
	"A B C D E F G H I J K L M N O P Q R S T U V W X Y Z 0 1 2 3 4 5 6 7 8 9", " ")

var zhuyinGlyphs = strings.Split(
	"ㄅ ㄆ ㄇ ㄈ ㄉ ㄊ ㄋ ㄌ ㄍ ㄎ ㄏ ㄐ ㄑ ㄒ ㄓ ㄔ ㄕ ㄖ ㄗ ㄘ ㄙ "+
		"ㄧ ㄨ ㄩ ㄚ ㄛ ㄜ ㄝ ㄞ ㄟ ㄠ ㄡ ㄢ ㄣ ㄤ ㄥ ㄦ", " ")

// zhuyinKeys maps each Bopomofo glyph to the physical key of the standard
// Zhuyin keyboard layout, normalized uppercase.
var zhuyinKeys = map[string]string{
	"ㄅ": "1", "ㄆ": "Q", "ㄇ": "A", "ㄈ": "Z",
	"ㄉ": "2", "ㄊ": "W", "ㄋ": "S", "ㄌ": "X",
	"ㄍ": "E", "ㄎ": "D", "ㄏ": "C",
	"ㄐ": "R", "ㄑ": "F", "ㄒ": "V",
	"ㄓ": "5", "ㄔ": "T", "ㄕ": "G", "ㄖ": "B",
	"ㄗ": "Y", "ㄘ": "H", "ㄙ": "N",
	"ㄧ": "U", "ㄨ": "J", "ㄩ": "M",
	"ㄚ": "8", "ㄛ": "I", "ㄜ": "K", "ㄝ": ",",
	"ㄞ": "9", "ㄟ": "O", "ㄠ": "L", "ㄡ": ".",
	"ㄢ": "0", "ㄣ": "P", "ㄤ": ";", "ㄥ": "/",
	"ㄦ": "-",
}

func init() {
	// Catalog/lookup consistency: every playable Zhuyin glyph must have
	// exactly one key mapping. A mismatch is a programming error, caught at
	// startup rather than surfacing as an unmatchable bomb mid-game.
	for _, glyph := range zhuyinGlyphs {
		if _, ok := zhuyinKeys[glyph]; !ok {
			panic(fmt.Sprintf("game: zhuyin glyph %q has no key mapping", glyph))
		}
	}
	if len(zhuyinKeys) != len(zhuyinGlyphs) {
		panic(fmt.Sprintf("game: zhuyin key table has %d entries, catalog has %d glyphs",
			len(zhuyinKeys), len(zhuyinGlyphs)))
	}
}

// Chars returns the ordered glyph catalog for a mode, or nil for an unknown
// mode. The returned slice must not be mutated.
func Chars(m Mode) []string {
	switch m {
	case ModeLatin:
		return latinGlyphs
	case ModeZhuyin:
		return zhuyinGlyphs
	default:
		return nil
	}
}

// KeyFor resolves the physical key that clears a bomb bearing the given
// glyph. Latin glyphs map to themselves uppercased; Zhuyin glyphs go through
// the layout table. ok is false for glyphs outside the mode's catalog, which
// the engine treats as unmatchable.
func KeyFor(m Mode, glyph string) (string, bool) {
	switch m {
	case ModeLatin:
		up := strings.ToUpper(glyph)
		for _, g := range latinGlyphs {
			if g == up {
				return up, true
			}
		}
		return "", false
	case ModeZhuyin:
		key, ok := zhuyinKeys[glyph]
		return key, ok
	default:
		return "", false
	}
}
