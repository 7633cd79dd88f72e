package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/crazysnake/internal/core"
)

// KeyMap defines the game's key bindings. Directions accept arrows, WASD,
// ZQSD for AZERTY keyboards and the numpad.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Dismiss key.Binding
	Quit    key.Binding

	// QuitIdle quits only outside play, since q steers left on ZQSD.
	QuitIdle key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "z", "8"),
			key.WithHelp("↑/w/z", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "2"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "q", "4"),
			key.WithHelp("←/a/q", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "6"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause/back"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "hang up"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		QuitIdle: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Dismiss, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Back, k.Dismiss},
		{k.QuitIdle, k.Quit},
	}
}

// MapKey translates a key message to a game action.
// q maps to ActionLeft; the caller decides whether it quits.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Dismiss):
		return core.ActionDismiss
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}
