// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must pass through the gap of a scrolling pipe.
// The package is pure logic: hosts feed it input frames and a drawing surface.
package flappy

import (
	"fmt"

	"github.com/zhangkai803/flappy-bird/internal/config"
	"github.com/zhangkai803/flappy-bird/internal/core"
)

// Mode is the screen the game is currently showing.
type Mode int

const (
	ModeMenu Mode = iota // Title screen, initial mode
	ModePlay             // A round in progress
	ModeEnd              // Game over screen
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlay:
		return "Play"
	case ModeEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// Text shown on the menu and game over screens
const (
	menuTitle  = "Welcome to Flappy Bird!"
	endTitle   = "You Dead!"
	playOption = "(P) Play"
	quitOption = "(Q) Quit"
	flapHint   = "Space to flap"
)

// TickResult is returned by State.Tick after each frame.
type TickResult struct {
	Mode Mode // Mode after this tick
	Quit bool // The player asked to leave; the host should stop ticking
}

// State owns the whole game: the current mode, the physics soft timer,
// and exactly one player and one obstacle.
type State struct {
	cfg       config.FlappyConfig
	mode      Mode
	frameTime float64 // Milliseconds accumulated toward the next physics step
	player    Player
	obstacle  Obstacle
}

// New creates a game showing the menu. The configuration must be valid
// (see config.FlappyConfig.Validate) and is not modified afterwards.
func New(cfg config.FlappyConfig) *State {
	return &State{
		cfg:      cfg,
		mode:     ModeMenu,
		player:   NewPlayer(cfg),
		obstacle: NewObstacle(cfg),
	}
}

// Title returns the display name for this game.
func (s *State) Title() string {
	return s.cfg.Screen.Title
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	return s.mode
}

// Player returns a copy of the player.
func (s *State) Player() Player {
	return s.player
}

// Obstacle returns a copy of the obstacle.
func (s *State) Obstacle() Obstacle {
	return s.obstacle
}

// FrameTime returns the milliseconds accumulated toward the next physics step.
func (s *State) FrameTime() float64 {
	return s.frameTime
}

// Tick advances the game by one host frame and draws it to dst.
func (s *State) Tick(in core.InputFrame, dst core.Surface) TickResult {
	quit := false
	switch s.mode {
	case ModeMenu:
		quit = s.menu(in, dst)
	case ModePlay:
		s.play(in, dst)
	case ModeEnd:
		quit = s.dead(in, dst)
	}
	return TickResult{Mode: s.mode, Quit: quit}
}

// menu draws the title screen and handles its options.
func (s *State) menu(in core.InputFrame, dst core.Surface) bool {
	return s.options(in, dst, menuTitle)
}

// dead draws the game over screen and handles its options.
func (s *State) dead(in core.InputFrame, dst core.Surface) bool {
	return s.options(in, dst, endTitle)
}

// options draws a screen with a title and the play/quit choices.
// Returns true if the player chose to quit.
func (s *State) options(in core.InputFrame, dst core.Surface, title string) bool {
	dst.Clear()
	dst.PrintCentered(5, title)
	dst.PrintCentered(8, playOption)
	dst.PrintCentered(9, quitOption)

	switch in.Action {
	case core.ActionPlay:
		s.restart()
	case core.ActionQuit:
		return true
	}
	return false
}

// play runs one frame of a round.
func (s *State) play(in core.InputFrame, dst core.Surface) {
	dst.ClearBg(s.cfg.BackgroundColor())

	s.frameTime += in.ElapsedMs
	if s.frameTime > s.cfg.Timing.FrameDurationMs {
		s.frameTime = 0
		s.player.GravityAndMove()
	}

	// Flaps are not gated by the physics step
	if in.Has(core.ActionFlap) {
		s.player.Flap()
	}

	dst.Print(0, 0, flapHint)
	dst.Print(0, 1, fmt.Sprintf("player: %d %d", s.player.X, s.player.Y))
	dst.Print(0, 2, fmt.Sprintf("obstacle: %d %d", s.obstacle.X, s.obstacle.GapY))

	s.player.Render(dst)
	s.obstacle.Render(dst)

	// Checked against this frame's obstacle column, before it scrolls
	if s.crashed() {
		s.mode = ModeEnd
	}

	s.obstacle.Move()
}

// crashed reports whether the player hit the pipe or fell off the screen.
// The pipe only counts in the frame where its column is the player's lane.
func (s *State) crashed() bool {
	if s.player.Y > s.cfg.Screen.Height {
		return true
	}
	if s.obstacle.X != s.player.X {
		return false
	}
	return !s.obstacle.Gap().Contains(s.player.X, s.player.Y)
}

// restart starts a fresh round.
func (s *State) restart() {
	s.player = NewPlayer(s.cfg)
	s.obstacle = NewObstacle(s.cfg)
	s.frameTime = 0
	s.mode = ModePlay
}
