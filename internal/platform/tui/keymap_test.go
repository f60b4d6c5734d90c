package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zhangkai803/flappy-bird/internal/core"
	"github.com/zhangkai803/flappy-bird/internal/games/flappy"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	tests := []struct {
		name     string
		mode     flappy.Mode
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"p on menu", flappy.ModeMenu, runeKey('p'), core.ActionPlay},
		{"P on menu", flappy.ModeMenu, runeKey('P'), core.ActionPlay},
		{"q on game over", flappy.ModeEnd, runeKey('q'), core.ActionQuit},
		{"space while playing", flappy.ModePlay, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlap},
		{"space on menu", flappy.ModeMenu, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionNone},
		{"p while playing", flappy.ModePlay, runeKey('p'), core.ActionNone},
		{"q while playing", flappy.ModePlay, runeKey('q'), core.ActionNone},
		{"other key", flappy.ModeMenu, runeKey('x'), core.ActionNone},
		{"enter", flappy.ModeMenu, tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			keys := DefaultKeyMap()
			keys.ForMode(tc.mode)

			if got := keys.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelpFollowsMode(t *testing.T) {
	keys := DefaultKeyMap()

	keys.ForMode(flappy.ModePlay)
	if !keys.Flap.Enabled() || keys.Play.Enabled() || keys.Quit.Enabled() {
		t.Error("only flap should be enabled while playing")
	}
	if !keys.ForceQuit.Enabled() {
		t.Error("ctrl+c should always be enabled")
	}

	keys.ForMode(flappy.ModeEnd)
	if keys.Flap.Enabled() || !keys.Play.Enabled() || !keys.Quit.Enabled() {
		t.Error("play and quit should be enabled on the game over screen")
	}
}
