package core

// RuntimeConfig contains host-side settings that never reach the game logic.
type RuntimeConfig struct {
	TickRate int    // Host ticks per second (default 60)
	Title    string // Terminal or window title
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Title:    "Flappy Bird",
	}
}
