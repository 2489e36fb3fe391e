package core

// Color is a renderer-agnostic foreground color for a screen cell.
// The terminal layer maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorOrange
	ColorPurple
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightWhite
)

// discPalette cycles through the disc colors by size.
var discPalette = []Color{
	ColorRed,
	ColorGreen,
	ColorBlue,
	ColorYellow,
	ColorOrange,
	ColorPurple,
	ColorCyan,
}

// DiscColor returns the color for a disc of the given size.
func DiscColor(size int) Color {
	if size < 0 {
		size = -size
	}
	return discPalette[size%len(discPalette)]
}
