package core

// Color is an opaque palette index passed to the Renderer.
// Frontends map it to whatever their output device supports.
type Color uint8

// Palette used by sprites, the HUD and the screens.
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

// ColorBackground is the colour erase operations paint with.
const ColorBackground = ColorDefault
