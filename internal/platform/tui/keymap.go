package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zhangkai803/flappy-bird/internal/core"
	"github.com/zhangkai803/flappy-bird/internal/games/flappy"
)

// KeyMap defines the key bindings of the game.
// Bindings that make no sense in the current mode are disabled, which hides
// them from the help line and stops them from matching.
type KeyMap struct {
	Play      key.Binding
	Quit      key.Binding
	Flap      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Play: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		Flap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "flap"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Flap, k.Quit, k.ForceQuit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Quit},
		{k.Flap, k.ForceQuit},
	}
}

// ForMode enables the bindings that the given mode reacts to.
func (k *KeyMap) ForMode(mode flappy.Mode) {
	playing := mode == flappy.ModePlay
	k.Play.SetEnabled(!playing)
	k.Quit.SetEnabled(!playing)
	k.Flap.SetEnabled(playing)
}

// Action translates a key message to a game action.
// Keys without an enabled binding map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Play):
		return core.ActionPlay
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	}
	return core.ActionNone
}
