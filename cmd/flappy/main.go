// flappy is a Flappy Bird clone for the terminal.
//
// Usage:
//
//	flappy                  - Play in this terminal (same as "flappy play")
//	flappy play             - Play in this terminal or a window
//	flappy serve            - Start SSH server for remote play
//	flappy config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal",
	Long: `Flappy Bird in your terminal: flap through the gap in the wall.

Available commands:
  play     - Play a game (default)
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  flappy
  flappy play --backend tcell
  flappy serve --ssh :2222
  flappy config > ~/.flappy/flappy.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// The root command plays, so it takes the play flags too
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
