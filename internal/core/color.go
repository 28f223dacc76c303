package core

// Color represents the style of a screen cell.
// Plain colors set the foreground; tile colors also fill the background.
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
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBoard // board background
	ColorEmpty // empty tile slot

	// Tile colors, one per value from 2 up to 2048, then one for anything larger.
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTileSuper
)

// TileColor returns the color for a tile value. Zero (empty) maps to ColorEmpty.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorEmpty
	}
	c := ColorTile2
	for v := 2; v < value && c < ColorTileSuper; v *= 2 {
		c++
	}
	return c
}
