package core

// Color represents a foreground color for a screen cell.
// The host maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the game and its overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightMagenta
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGold
	ColorGray
)
