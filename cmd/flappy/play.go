package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zhangkai803/flappy-bird/internal/config"
	"github.com/zhangkai803/flappy-bird/internal/core"
	"github.com/zhangkai803/flappy-bird/internal/games/flappy"
	"github.com/zhangkai803/flappy-bird/internal/platform/console"
	"github.com/zhangkai803/flappy-bird/internal/platform/tui"
)

var (
	flagConfig  string
	flagBackend string
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing in this terminal, or in a window.

Controls:
  P        - Play (from the menu or after dying)
  Space    - Flap
  Q        - Quit (from the menu or after dying)
  Ctrl+C   - Quit at any time

Backends:
  tea      - Bubble Tea renderer (default)
  tcell    - tcell cell renderer
  window   - desktop window (needs a build with -tags window)

Examples:
  flappy play
  flappy play --backend tcell
  flappy play --config ./my-flappy.yaml --log-file /tmp/flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagBackend, "backend", "tea", "Renderer: tea, tcell, window")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded if empty)")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Title:    gameCfg.Screen.Title,
	}

	width, height := gameCfg.Screen.Width, gameCfg.Screen.Height
	if flagBackend != "window" {
		warnSmallTerminal(width, height)
	}

	game := flappy.New(gameCfg)
	logger.Info("starting game", "backend", flagBackend, "grid", fmt.Sprintf("%dx%d", width, height), "fps", cfg.TickRate)

	if runErr := runBackend(flagBackend, game, width, height, cfg, logger); runErr != nil {
		logger.Error("game stopped", "error", runErr)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("game finished")
}

func runBackend(name string, game *flappy.State, width, height int, cfg core.RuntimeConfig, logger *log.Logger) error {
	switch name {
	case "tea", "":
		return tui.Run(game, width, height, cfg, logger)
	case "tcell":
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("console: cannot create screen: %w", err)
		}
		return console.Run(screen, game, width, height, cfg, logger)
	case "window":
		return runWindow(game, width, height, cfg, logger)
	default:
		return fmt.Errorf("unknown backend %q (want tea, tcell or window)", name)
	}
}

// warnSmallTerminal prints a notice when the grid will not fit.
func warnSmallTerminal(width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	if w < width || h < height {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d\n", w, h, width, height)
	}
}
