package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/zhangkai803/flappy-bird/internal/core"
	"github.com/zhangkai803/flappy-bird/internal/games/flappy"
)

// Model is the Bubble Tea model hosting one game.
type Model struct {
	game     *flappy.State
	screen   *core.Screen
	painter  *Painter
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	logger   *log.Logger
	input    core.InputFrame
	lastTick time.Time
	mode     flappy.Mode
	quitting bool
}

// ModelOption customizes a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for mode transitions.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRenderer sets the lipgloss renderer used to color the screen.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		m.painter = NewPainter(r)
	}
}

// NewModel creates a new Bubble Tea model for the game.
// The screen matches the game's configured grid, not the terminal.
func NewModel(game *flappy.State, width, height int, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		game:    game,
		screen:  core.NewScreen(width, height),
		painter: NewPainter(nil),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		config:  cfg,
		logger:  log.New(io.Discard),
		mode:    game.Mode(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.keys.ForMode(m.mode)
	return m
}

// Init sets the terminal title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.config.Title),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the most recent action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.logger.Info("interrupted", "mode", m.mode)
		m.quitting = true
		return m, tea.Quit
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.input.ElapsedMs = elapsedMs(m.lastTick, now)
	m.lastTick = now

	result := m.game.Tick(m.input, m.screen)
	m.input.Clear()

	if result.Mode != m.mode {
		m.logger.Debug("mode changed", "from", m.mode, "to", result.Mode)
		m.mode = result.Mode
		m.keys.ForMode(m.mode)
	}

	if result.Quit {
		m.logger.Info("player quit", "mode", m.mode)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// Mode returns the game mode as of the last tick.
func (m Model) Mode() flappy.Mode {
	return m.mode
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.painter.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for the game and blocks until it exits.
func Run(game *flappy.State, width, height int, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, width, height, cfg, WithLogger(logger))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
