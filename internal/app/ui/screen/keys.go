package screen

import (
	"github.com/charmbracelet/bubbles/key"

	"kadry/internal/app/ui/components"
)

// KeyMap defines the key bindings for the board screen
type KeyMap struct {
	components.KeyMap
	Open       key.Binding
	Back       key.Binding
	Menu       key.Binding
	News       key.Binding
	Documents  key.Binding
	Contacts   key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	ToggleTips key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		KeyMap: components.DefaultKeyMap(),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		News: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "news"),
		),
		Documents: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "documents"),
		),
		Contacts: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "contacts"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		ToggleTips: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tips"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Back, k.Menu, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Open, k.Back, k.Menu},
		{k.News, k.Documents, k.Contacts},
		{k.ToggleTips, k.Quit, k.ForceQuit},
	}
}
