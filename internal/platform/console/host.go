package console

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/zhangkai803/flappy-bird/internal/core"
	"github.com/zhangkai803/flappy-bird/internal/games/flappy"
)

// Host drives a game on a tcell screen.
type Host struct {
	screen   tcell.Screen
	surface  *Surface
	game     *flappy.State
	config   core.RuntimeConfig
	logger   *log.Logger
	input    core.InputFrame
	lastTick time.Time
	mode     flappy.Mode
}

// NewHost creates a host for game on an initialized screen.
func NewHost(screen tcell.Screen, game *flappy.State, width, height int, cfg core.RuntimeConfig, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Host{
		screen:  screen,
		surface: NewSurface(screen, width, height),
		game:    game,
		config:  cfg,
		logger:  logger,
		mode:    game.Mode(),
	}
}

// HandleEvent applies a terminal event.
// Returns false when the host should stop.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			h.logger.Info("interrupted", "mode", h.mode)
			return false
		case tcell.KeyRune:
			if a := actionForRune(ev.Rune()); a != core.ActionNone {
				h.input.Set(a)
			}
		}

	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

// actionForRune maps typed characters to game actions.
func actionForRune(r rune) core.Action {
	switch r {
	case 'p', 'P':
		return core.ActionPlay
	case 'q', 'Q':
		return core.ActionQuit
	case ' ':
		return core.ActionFlap
	}
	return core.ActionNone
}

// Frame runs one game tick at time now and shows it.
// Returns false when the game asked to quit.
func (h *Host) Frame(now time.Time) bool {
	if !h.lastTick.IsZero() && now.After(h.lastTick) {
		h.input.ElapsedMs = float64(now.Sub(h.lastTick)) / float64(time.Millisecond)
	}
	h.lastTick = now

	result := h.game.Tick(h.input, h.surface)
	h.input.Clear()
	h.screen.Show()

	if result.Mode != h.mode {
		h.logger.Debug("mode changed", "from", h.mode, "to", result.Mode)
		h.mode = result.Mode
	}
	if result.Quit {
		h.logger.Info("player quit", "mode", h.mode)
		return false
	}
	return true
}

// Run initializes screen, plays until the game or the user quits, and
// restores the terminal.
func Run(screen tcell.Screen, game *flappy.State, width, height int, cfg core.RuntimeConfig, logger *log.Logger) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("console: cannot initialize screen: %w", err)
	}
	defer screen.Fini()

	h := NewHost(screen, game, width, height, cfg, logger)
	screen.SetTitle(cfg.Title)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	for {
		select {
		case ev := <-events:
			if ev == nil || !h.HandleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			if !h.Frame(now) {
				return nil
			}
		}
	}
}
