package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer.
type Color uint8

// Palette used by the game renderers.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)
