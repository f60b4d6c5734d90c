// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/zhangkai803/flappy-bird/internal/core"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// FlappyConfig contains all configuration for the game.
// Once validated and handed to the game it is treated as immutable.
type FlappyConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Timing   TimingConfig   `yaml:"timing"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Player   PlayerConfig   `yaml:"player"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Colors   ColorsConfig   `yaml:"colors"`
}

// ScreenConfig defines the character grid.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// TimingConfig defines the soft timer that gates physics steps.
type TimingConfig struct {
	FrameDurationMs float64 `yaml:"frame_duration_ms"`
}

// PhysicsConfig defines the player's vertical motion.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Added to velocity per physics step
	MaxVelocity  float64 `yaml:"max_velocity"`  // Gravity stops accelerating at this speed
	FlapVelocity float64 `yaml:"flap_velocity"` // Velocity set by a flap (negative = up)
}

// PlayerConfig defines where a fresh player starts.
type PlayerConfig struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Glyph string `yaml:"glyph"`
}

// ObstacleConfig defines the gap of a fresh obstacle.
type ObstacleConfig struct {
	GapY  int    `yaml:"gap_y"`
	Size  int    `yaml:"size"`
	Glyph string `yaml:"glyph"`
}

// ColorsConfig names the colors used while playing.
type ColorsConfig struct {
	PlayerFg   string `yaml:"player_fg"`
	PlayerBg   string `yaml:"player_bg"`
	Background string `yaml:"background"`
}

// PlayerRune returns the glyph used to draw the player.
func (c FlappyConfig) PlayerRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Player.Glyph)
	return r
}

// ObstacleRune returns the glyph used to draw obstacle columns.
func (c FlappyConfig) ObstacleRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Obstacle.Glyph)
	return r
}

// PlayerColors returns the player's foreground and background colors.
// Unknown names fall back to the terminal default.
func (c FlappyConfig) PlayerColors() (fg, bg core.Color) {
	fg, _ = core.ParseColor(c.Colors.PlayerFg)
	bg, _ = core.ParseColor(c.Colors.PlayerBg)
	return fg, bg
}

// BackgroundColor returns the background painted while playing.
func (c FlappyConfig) BackgroundColor() core.Color {
	bg, _ := core.ParseColor(c.Colors.Background)
	return bg
}

// Validate checks that the configuration describes a playable grid.
func (c FlappyConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	}
	if c.Timing.FrameDurationMs <= 0 {
		return fmt.Errorf("%w: timing.frame_duration_ms must be positive, got %v", ErrInvalid, c.Timing.FrameDurationMs)
	}
	if c.Physics.MaxVelocity <= 0 {
		return fmt.Errorf("%w: physics.max_velocity must be positive, got %v", ErrInvalid, c.Physics.MaxVelocity)
	}
	if c.Physics.Gravity < 0 {
		return fmt.Errorf("%w: physics.gravity must not be negative, got %v", ErrInvalid, c.Physics.Gravity)
	}
	if c.Player.X < 0 || c.Player.X >= c.Screen.Width || c.Player.Y < 0 || c.Player.Y >= c.Screen.Height {
		return fmt.Errorf("%w: player start (%d, %d) is off screen", ErrInvalid, c.Player.X, c.Player.Y)
	}
	if c.Obstacle.Size <= 0 || c.Obstacle.GapY < 0 || c.Obstacle.GapY+c.Obstacle.Size > c.Screen.Height {
		return fmt.Errorf("%w: obstacle gap %d+%d does not fit height %d", ErrInvalid, c.Obstacle.GapY, c.Obstacle.Size, c.Screen.Height)
	}
	if utf8.RuneCountInString(c.Player.Glyph) != 1 {
		return fmt.Errorf("%w: player.glyph must be one character, got %q", ErrInvalid, c.Player.Glyph)
	}
	if utf8.RuneCountInString(c.Obstacle.Glyph) != 1 {
		return fmt.Errorf("%w: obstacle.glyph must be one character, got %q", ErrInvalid, c.Obstacle.Glyph)
	}
	for field, name := range map[string]string{
		"colors.player_fg":  c.Colors.PlayerFg,
		"colors.player_bg":  c.Colors.PlayerBg,
		"colors.background": c.Colors.Background,
	} {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%w: %s: unknown color %q", ErrInvalid, field, name)
		}
	}
	return nil
}
