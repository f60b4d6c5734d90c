package console

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/zhangkai803/flappy-bird/internal/config"
	"github.com/zhangkai803/flappy-bird/internal/core"
	"github.com/zhangkai803/flappy-bird/internal/games/flappy"
)

type mockCell struct {
	r     rune
	style tcell.Style
}

// MockScreen is a minimal mock for tcell.Screen used in tests
type MockScreen struct {
	tcell.Screen
	cells map[[2]int]mockCell
	shows int
	syncs int
}

func newMockScreen() *MockScreen {
	return &MockScreen{cells: make(map[[2]int]mockCell)}
}

func (m *MockScreen) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = mockCell{r: mainc, style: style}
}
func (m *MockScreen) Show() { m.shows++ }
func (m *MockScreen) Sync() { m.syncs++ }

func (m *MockScreen) row(y, width int) string {
	runes := make([]rune, width)
	for x := range runes {
		runes[x] = m.cells[[2]int{x, y}].r
	}
	return string(runes)
}

func newTestHost() (*Host, *MockScreen) {
	cfg := config.DefaultFlappyConfig()
	screen := newMockScreen()
	h := NewHost(screen, flappy.New(cfg), cfg.Screen.Width, cfg.Screen.Height, core.DefaultConfig(), nil)
	return h, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestSurfaceClipsToGrid(t *testing.T) {
	screen := newMockScreen()
	s := NewSurface(screen, 10, 5)

	s.SetCell(10, 0, core.ColorRed, core.ColorRed, 'X')
	s.SetCell(0, 5, core.ColorRed, core.ColorRed, 'X')
	s.SetCell(-1, 0, core.ColorRed, core.ColorRed, 'X')
	if len(screen.cells) != 0 {
		t.Errorf("out of grid cells were written: %v", screen.cells)
	}

	s.ClearBg(core.ColorNavy)
	if len(screen.cells) != 50 {
		t.Errorf("ClearBg wrote %d cells, expected 50", len(screen.cells))
	}
}

func TestSurfaceColors(t *testing.T) {
	screen := newMockScreen()
	s := NewSurface(screen, 10, 5)

	s.ClearBg(core.ColorNavy)
	s.SetCell(2, 2, core.ColorYellow, core.ColorBlack, '@')
	s.Print(0, 0, "hi")

	want := tcell.StyleDefault.Foreground(tcell.PaletteColor(3)).Background(tcell.PaletteColor(0))
	if got := screen.cells[[2]int{2, 2}]; got.r != '@' || got.style != want {
		t.Errorf("player cell = %+v, expected '@' with %v", got, want)
	}

	wantText := tcell.StyleDefault.Foreground(tcell.ColorDefault).Background(tcell.PaletteColor(17))
	if got := screen.cells[[2]int{1, 0}]; got.r != 'i' || got.style != wantText {
		t.Errorf("printed cell = %+v, expected 'i' on navy", got)
	}
}

func TestHostMenuToPlay(t *testing.T) {
	h, screen := newTestHost()
	base := time.Now()

	if !h.Frame(base) {
		t.Fatal("menu frame should not quit")
	}
	if got := screen.row(5, 80); got[core.CenterX(80, "Welcome to Flappy Bird!"):][:23] != "Welcome to Flappy Bird!" {
		t.Errorf("row 5 = %q", got)
	}

	h.HandleEvent(key('p'))
	h.Frame(base.Add(16 * time.Millisecond))
	if h.mode != flappy.ModePlay {
		t.Fatalf("mode = %v, expected Play", h.mode)
	}

	h.HandleEvent(key(' '))
	h.Frame(base.Add(32 * time.Millisecond))
	if v := h.game.Player().Velocity; v != -2.0 {
		t.Errorf("Velocity = %v, expected -2.0", v)
	}
	if screen.shows != 3 {
		t.Errorf("Show() called %d times, expected 3", screen.shows)
	}
}

func TestHostQuit(t *testing.T) {
	h, _ := newTestHost()

	h.HandleEvent(key('q'))
	if h.Frame(time.Now()) {
		t.Error("q on the menu should stop the host")
	}
}

func TestHostInterrupt(t *testing.T) {
	h, _ := newTestHost()

	if h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
		t.Error("ctrl+c should stop the host")
	}
	if !h.HandleEvent(key('x')) {
		t.Error("unbound keys should be ignored")
	}
}

func TestHostResizeSyncs(t *testing.T) {
	h, screen := newTestHost()

	h.HandleEvent(tcell.NewEventResize(100, 60))
	if screen.syncs != 1 {
		t.Errorf("Sync() called %d times, expected 1", screen.syncs)
	}
}

func TestActionForRune(t *testing.T) {
	tests := map[rune]core.Action{
		'p': core.ActionPlay,
		'P': core.ActionPlay,
		'q': core.ActionQuit,
		'Q': core.ActionQuit,
		' ': core.ActionFlap,
		'x': core.ActionNone,
	}
	for r, want := range tests {
		if got := actionForRune(r); got != want {
			t.Errorf("actionForRune(%q) = %v, expected %v", r, got, want)
		}
	}
}
