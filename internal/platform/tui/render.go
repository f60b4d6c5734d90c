package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zhangkai803/flappy-bird/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// Painter converts Screen buffers to styled strings.
// Styles are built once per color pair and cached.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[colorPair]lipgloss.Style
}

// NewPainter creates a painter for the given renderer.
// SSH sessions pass a per-session renderer so color detection matches the
// remote terminal; local play uses lipgloss.DefaultRenderer().
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[colorPair]lipgloss.Style),
	}
}

func (p *Painter) style(pair colorPair) lipgloss.Style {
	if st, ok := p.styles[pair]; ok {
		return st
	}
	st := p.renderer.NewStyle()
	if code, ok := pair.fg.ANSI(); ok {
		st = st.Foreground(lipgloss.Color(strconv.Itoa(code)))
	}
	if code, ok := pair.bg.ANSI(); ok {
		st = st.Background(lipgloss.Color(strconv.Itoa(code)))
	}
	p.styles[pair] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Painter) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			pair := colorPair{start.Fg, start.Bg}

			// Collect consecutive cells with the same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != pair.fg || cell.Bg != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(pair).Render(run.String()))
		}
	}
	return sb.String()
}
