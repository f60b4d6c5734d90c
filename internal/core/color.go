package core

// Color represents a foreground or background color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
// ColorDefault leaves the terminal's own color in place.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightWhite
	ColorNavy
	ColorGray
)

var colorNames = map[string]Color{
	"default":       ColorDefault,
	"black":         ColorBlack,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"blue":          ColorBlue,
	"magenta":       ColorMagenta,
	"cyan":          ColorCyan,
	"white":         ColorWhite,
	"bright_yellow": ColorBrightYellow,
	"bright_white":  ColorBrightWhite,
	"navy":          ColorNavy,
	"gray":          ColorGray,
}

// ParseColor looks up a color by its configuration name (e.g. "navy").
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}

// ANSI returns the ANSI 256-color code for the color.
// The second value is false for ColorDefault.
func (c Color) ANSI() (int, bool) {
	switch c {
	case ColorBlack:
		return 0, true
	case ColorRed:
		return 1, true
	case ColorGreen:
		return 2, true
	case ColorYellow:
		return 3, true
	case ColorBlue:
		return 4, true
	case ColorMagenta:
		return 5, true
	case ColorCyan:
		return 6, true
	case ColorWhite:
		return 7, true
	case ColorBrightYellow:
		return 11, true
	case ColorBrightWhite:
		return 15, true
	case ColorNavy:
		return 17, true
	case ColorGray:
		return 245, true
	default:
		return 0, false
	}
}
