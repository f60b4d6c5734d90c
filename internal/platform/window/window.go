//go:build window

// Package window hosts the game in a desktop window using Ebitengine.
// The grid is drawn with the built-in debug font, one 6x16 pixel cell per
// character. Only backgrounds are colored; glyphs are always white.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/zhangkai803/flappy-bird/internal/core"
	"github.com/zhangkai803/flappy-bird/internal/games/flappy"
)

// Debug font cell size in pixels
const (
	cellW = 6
	cellH = 16
)

var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyP:     core.ActionPlay,
	ebiten.KeyQ:     core.ActionQuit,
	ebiten.KeySpace: core.ActionFlap,
}

// palette approximates the terminal colors used by the game.
var palette = map[core.Color]color.RGBA{
	core.ColorBlack:        {0x00, 0x00, 0x00, 0xff},
	core.ColorRed:          {0xcd, 0x00, 0x00, 0xff},
	core.ColorGreen:        {0x00, 0xcd, 0x00, 0xff},
	core.ColorYellow:       {0xcd, 0xcd, 0x00, 0xff},
	core.ColorBlue:         {0x00, 0x00, 0xee, 0xff},
	core.ColorMagenta:      {0xcd, 0x00, 0xcd, 0xff},
	core.ColorCyan:         {0x00, 0xcd, 0xcd, 0xff},
	core.ColorWhite:        {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightYellow: {0xff, 0xff, 0x00, 0xff},
	core.ColorBrightWhite:  {0xff, 0xff, 0xff, 0xff},
	core.ColorNavy:         {0x00, 0x00, 0x5f, 0xff},
	core.ColorGray:         {0x8a, 0x8a, 0x8a, 0xff},
}

// Game adapts a flappy.State to ebiten.Game.
type Game struct {
	state    *flappy.State
	screen   *core.Screen
	logger   *log.Logger
	input    core.InputFrame
	lastTick time.Time
	mode     flappy.Mode
}

// Update runs one game tick per ebiten update.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("interrupted", "mode", g.mode)
		return ebiten.Termination
	}
	for k, a := range keyActions {
		if inpututil.IsKeyJustPressed(k) {
			g.input.Set(a)
		}
	}

	now := time.Now()
	if !g.lastTick.IsZero() {
		g.input.ElapsedMs = float64(now.Sub(g.lastTick)) / float64(time.Millisecond)
	}
	g.lastTick = now

	result := g.state.Tick(g.input, g.screen)
	g.input.Clear()

	if result.Mode != g.mode {
		g.logger.Debug("mode changed", "from", g.mode, "to", result.Mode)
		g.mode = result.Mode
	}
	if result.Quit {
		g.logger.Info("player quit", "mode", g.mode)
		return ebiten.Termination
	}
	return nil
}

// Draw paints cell backgrounds, then each row of glyphs.
func (g *Game) Draw(dst *ebiten.Image) {
	for y := 0; y < g.screen.Height(); y++ {
		for x := 0; x < g.screen.Width(); x++ {
			if bg, ok := palette[g.screen.GetCell(x, y).Bg]; ok {
				vector.DrawFilledRect(dst, float32(x*cellW), float32(y*cellH), cellW, cellH, bg, false)
			}
		}
		ebitenutil.DebugPrintAt(dst, g.screen.Row(y), 0, y*cellH)
	}
}

// Layout fixes the logical size to the game grid.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screen.Width() * cellW, g.screen.Height() * cellH
}

// Run opens the window and blocks until it is closed or the game quits.
func Run(state *flappy.State, width, height int, cfg core.RuntimeConfig, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		state:  state,
		screen: core.NewScreen(width, height),
		logger: logger,
		mode:   state.Mode(),
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(width*cellW, height*cellH)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
