package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"namepick/internal/ui/field"
)

// KeyMap holds the application-level bindings. The field consumes its
// own bindings while focused; these apply to the outer model.
type KeyMap struct {
	Focus     key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the stock application bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus: key.NewBinding(
			key.WithKeys("i", "/"),
			key.WithHelp("i", "edit query"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// helpKeyMap merges field and application bindings for the help bubble
type helpKeyMap struct {
	field field.KeyMap
	app   KeyMap
}

// ShortHelp implements help.KeyMap
func (h helpKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{h.field.Down, h.field.Select, h.field.Dismiss, h.app.Help, h.app.Quit}
}

// FullHelp implements help.KeyMap
func (h helpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.field.Up, h.field.Down, h.field.Select, h.field.Dismiss},
		{h.app.Focus, h.app.Help, h.app.Quit, h.app.ForceQuit},
	}
}
