package core

// Color is a foreground color for a screen cell, mapped to ANSI codes by the
// platform layer.
type Color uint8

// Colors used by the typebomb renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)
