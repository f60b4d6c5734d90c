package flappy

import (
	"github.com/zhangkai803/flappy-bird/internal/config"
	"github.com/zhangkai803/flappy-bird/internal/core"
)

// Player is the bird: a fixed horizontal lane and a vertical position
// driven by a capped gravity and instant flaps.
type Player struct {
	X        int     // Fixed horizontal lane
	Y        int     // Vertical position, never negative
	Velocity float64 // Rows per physics step (negative = up)

	physics config.PhysicsConfig
	glyph   rune
	fg, bg  core.Color
}

// NewPlayer creates a player at the configured start with zero velocity.
func NewPlayer(cfg config.FlappyConfig) Player {
	fg, bg := cfg.PlayerColors()
	return Player{
		X:       cfg.Player.X,
		Y:       cfg.Player.Y,
		physics: cfg.Physics,
		glyph:   cfg.PlayerRune(),
		fg:      fg,
		bg:      bg,
	}
}

// GravityAndMove advances the player by one physics step.
// Velocity only accelerates while below the cap; the position moves by the
// velocity truncated toward zero and is clamped at the top of the screen.
// Falling off the bottom is the game state's concern.
func (p *Player) GravityAndMove() {
	if p.Velocity < p.physics.MaxVelocity {
		p.Velocity += p.physics.Gravity
	}
	p.Y += int(p.Velocity)
	p.Y = core.Max(p.Y, 0)
}

// Flap replaces the current velocity with the upward impulse.
func (p *Player) Flap() {
	p.Velocity = p.physics.FlapVelocity
}

// Render draws the player glyph in its lane.
func (p *Player) Render(dst core.Surface) {
	dst.SetCell(p.X, p.Y, p.fg, p.bg, p.glyph)
}
