package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paddlegames/tui-pong/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding
	Pause     key.Binding
	Restart   key.Binding
	Confirm   key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown},
		{k.Pause, k.Restart, k.Confirm, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "left up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "left down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "right up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "right down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "back to menu"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "confirm"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action. Menu navigation reuses
// the movement keys; the session interprets them by state.
func (k KeyMap) MapKey(msg tea.KeyMsg, menuActive bool) core.Action {
	if menuActive {
		switch {
		case key.Matches(msg, k.LeftUp), key.Matches(msg, k.RightUp):
			return core.ActionMenuUp
		case key.Matches(msg, k.LeftDown), key.Matches(msg, k.RightDown):
			return core.ActionMenuDown
		case key.Matches(msg, k.Confirm):
			return core.ActionConfirm
		case key.Matches(msg, k.Quit):
			return core.ActionQuit
		}
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, k.LeftUp):
		return core.ActionLeftUp
	case key.Matches(msg, k.LeftDown):
		return core.ActionLeftDown
	case key.Matches(msg, k.RightUp):
		return core.ActionRightUp
	case key.Matches(msg, k.RightDown):
		return core.ActionRightDown
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// isMovement reports whether the action is a held movement intent rather
// than a one-shot command.
func isMovement(a core.Action) bool {
	switch a {
	case core.ActionLeftUp, core.ActionLeftDown, core.ActionRightUp, core.ActionRightDown:
		return true
	}
	return false
}
