package core

import (
	"strings"
	"unicode/utf8"
)

// Surface is the drawing capability a game needs from its host.
// Coordinates outside the surface are silently ignored.
type Surface interface {
	Width() int
	Height() int

	// Clear blanks every cell with default colors.
	Clear()

	// ClearBg blanks every cell and paints the background.
	ClearBg(bg Color)

	// SetCell places a single glyph with explicit colors.
	SetCell(x, y int, fg, bg Color, r rune)

	// Print writes text starting at (x, y) with the default foreground,
	// keeping each cell's background.
	Print(x, y int, text string)

	// PrintCentered writes text horizontally centered on row y.
	PrintCentered(y int, text string)
}

// Cell is one character position on the screen.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

var blankCell = Cell{Rune: ' '}

// Screen is a 2D cell buffer implementing Surface.
// It decouples game rendering from the terminal: the game draws into the
// buffer and the platform turns it into a frame.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

var _ Surface = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.cells = make([][]Cell, height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, width)
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with blank default-colored cells.
func (s *Screen) Clear() {
	s.ClearBg(ColorDefault)
}

// ClearBg fills the entire screen with blanks on the given background.
func (s *Screen) ClearBg(bg Color) {
	c := blankCell
	c.Bg = bg
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetCell places a rune with explicit colors at the given position.
func (s *Screen) SetCell(x, y int, fg, bg Color, r rune) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// Set places a rune at the given position, keeping the cell's background.
func (s *Screen) Set(x, y int, r rune) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x].Rune = r
	s.cells[y][x].Fg = ColorDefault
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the full cell at the given position.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// Print writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) Print(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// PrintCentered draws text centered horizontally on row y.
func (s *Screen) PrintCentered(y int, text string) {
	s.Print(CenterX(s.width, text), y, text)
}

// CenterX returns the column at which text starts when centered in width.
func CenterX(width int, text string) int {
	return (width - utf8.RuneCountInString(text)) / 2
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
