package display

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the countdown key bindings with built-in help text.
type KeyMap struct {
	Quit   key.Binding
	Toggle key.Binding
	Reset  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			// ctrl+c arrives as a key in raw mode, not as SIGINT.
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("Q", "Quit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("R", "Reset"),
		),
	}
}

// Hints returns the footer bindings in display order.
func (k KeyMap) Hints() []key.Binding {
	return []key.Binding{k.Quit, k.Toggle, k.Reset}
}
