package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette of screen colors.
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
	ColorGold
	ColorPink
	ColorTeal
)

// tokenPalette lists distinct colors in the order token color indexes use them.
var tokenPalette = []Color{
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightBlue,
	ColorBrightYellow,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
	ColorPink,
	ColorTeal,
	ColorWhite,
}

// TokenColor returns the screen color for a token color index.
// Indexes beyond the palette wrap around.
func TokenColor(index int) Color {
	if index < 0 {
		return ColorDefault
	}
	return tokenPalette[index%len(tokenPalette)]
}
