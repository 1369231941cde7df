package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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

// tilePalette assigns a distinct bright color to each tile type, cycling
// when a board uses more types than the palette has entries.
var tilePalette = []Color{
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightYellow,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
	ColorBrightWhite,
}

// TileColor returns the display color for a tile type index.
// Negative indices (empty cells) render in gray.
func TileColor(tile int) Color {
	if tile < 0 {
		return ColorGray
	}
	return tilePalette[tile%len(tilePalette)]
}
