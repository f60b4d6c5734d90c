package flappy

import (
	"github.com/zhangkai803/flappy-bird/internal/config"
	"github.com/zhangkai803/flappy-bird/internal/core"
)

// Obstacle is a one-column pipe with a gap, scrolling right to left.
// The gap never changes: when the pipe reaches the left edge it reappears
// at the right edge with the same opening.
type Obstacle struct {
	X    int // Column of the pipe
	GapY int // First row of the gap
	Size int // Number of rows in the gap

	screenW int
	screenH int
	glyph   rune
}

// NewObstacle creates an obstacle at the right edge of the screen.
func NewObstacle(cfg config.FlappyConfig) Obstacle {
	return Obstacle{
		X:       cfg.Screen.Width,
		GapY:    cfg.Obstacle.GapY,
		Size:    cfg.Obstacle.Size,
		screenW: cfg.Screen.Width,
		screenH: cfg.Screen.Height,
		glyph:   cfg.ObstacleRune(),
	}
}

// Gap returns the passable area of the obstacle's column.
func (o *Obstacle) Gap() core.Rect {
	return core.NewRect(o.X, o.GapY, 1, o.Size)
}

// Render draws the pipe above and below the gap.
func (o *Obstacle) Render(dst core.Surface) {
	for y := 0; y < o.GapY; y++ {
		dst.Print(o.X, y, string(o.glyph))
	}
	for y := o.GapY + o.Size; y < o.screenH; y++ {
		dst.Print(o.X, y, string(o.glyph))
	}
}

// Move scrolls the obstacle one column left, wrapping at the left edge.
func (o *Obstacle) Move() {
	o.X--
	if o.X == 0 {
		o.X = o.screenW
	}
}
