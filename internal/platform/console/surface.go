// Package console hosts the game directly on a tcell screen.
// Unlike the Bubble Tea host there is no intermediate string frame: the game
// draws straight into terminal cells.
package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/zhangkai803/flappy-bird/internal/core"
)

// Surface adapts a tcell.Screen to core.Surface, clipped to the game grid.
type Surface struct {
	screen tcell.Screen
	width  int
	height int
	bg     core.Color // Background of the last clear, kept by Print
}

var _ core.Surface = (*Surface)(nil)

// NewSurface wraps screen with a width x height drawing area.
func NewSurface(screen tcell.Screen, width, height int) *Surface {
	return &Surface{screen: screen, width: width, height: height}
}

// Width returns the grid width.
func (s *Surface) Width() int { return s.width }

// Height returns the grid height.
func (s *Surface) Height() int { return s.height }

// Clear blanks the grid with default colors.
func (s *Surface) Clear() {
	s.ClearBg(core.ColorDefault)
}

// ClearBg blanks the grid and paints the background.
func (s *Surface) ClearBg(bg core.Color) {
	s.bg = bg
	st := style(core.ColorDefault, bg)
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

// SetCell places a glyph with explicit colors.
func (s *Surface) SetCell(x, y int, fg, bg core.Color, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.screen.SetContent(x, y, r, nil, style(fg, bg))
}

// Print writes text with the default foreground on the current background.
func (s *Surface) Print(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.SetCell(x+i, y, core.ColorDefault, s.bg, r)
		i++
	}
}

// PrintCentered writes text horizontally centered on row y.
func (s *Surface) PrintCentered(y int, text string) {
	s.Print(core.CenterX(s.width, text), y, text)
}

// style converts a color pair to a tcell style.
func style(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(color(fg)).Background(color(bg))
}

// color maps a core color to the tcell palette.
func color(c core.Color) tcell.Color {
	code, ok := c.ANSI()
	if !ok {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(code)
}
