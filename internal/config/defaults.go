package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default configuration: an 80x50 grid,
// a 75ms physics step and the classic start positions.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: ScreenConfig{
			Width:  80,
			Height: 50,
			Title:  "Flappy Bird",
		},
		Timing: TimingConfig{
			FrameDurationMs: 75,
		},
		Physics: PhysicsConfig{
			Gravity:      0.2,
			MaxVelocity:  2.0,
			FlapVelocity: -2.0,
		},
		Player: PlayerConfig{
			X:     5,
			Y:     25,
			Glyph: "@",
		},
		Obstacle: ObstacleConfig{
			GapY:  20,
			Size:  10,
			Glyph: "|",
		},
		Colors: ColorsConfig{
			PlayerFg:   "yellow",
			PlayerBg:   "black",
			Background: "navy",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
