//go:build window

package window

import (
	"testing"

	"github.com/zhangkai803/flappy-bird/internal/config"
	"github.com/zhangkai803/flappy-bird/internal/core"
	"github.com/zhangkai803/flappy-bird/internal/games/flappy"
)

func TestLayoutMatchesGrid(t *testing.T) {
	g := &Game{
		state:  flappy.New(config.DefaultFlappyConfig()),
		screen: core.NewScreen(80, 50),
	}
	w, h := g.Layout(1920, 1080)
	if w != 80*cellW || h != 50*cellH {
		t.Errorf("Layout = %dx%d, expected %dx%d", w, h, 80*cellW, 50*cellH)
	}
}

func TestPaletteCoversConfigColors(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	fg, bg := cfg.PlayerColors()
	for _, c := range []core.Color{fg, bg, cfg.BackgroundColor()} {
		if _, ok := palette[c]; !ok {
			t.Errorf("palette missing color %v", c)
		}
	}
}
