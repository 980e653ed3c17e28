package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// numberColors follows the classic minesweeper palette for 1..8 and wraps
// for the larger counts that higher-dimensional boards produce.
var numberColors = []Color{
	ColorBrightBlue,
	ColorGreen,
	ColorBrightRed,
	ColorBlue,
	ColorRed,
	ColorCyan,
	ColorMagenta,
	ColorGray,
	ColorOrange,
	ColorBrightMagenta,
	ColorYellow,
	ColorBrightCyan,
}

// NumberColor returns the color used to draw an adjacency count.
func NumberColor(n int) Color {
	if n <= 0 {
		return ColorGray
	}
	return numberColors[(n-1)%len(numberColors)]
}
