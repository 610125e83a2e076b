package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the cursor bindings. Letters are reserved for tag entry, so
// cursor movement sticks to arrows and control chords.
type keyMap struct {
	CursorUp   key.Binding
	CursorDown key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		CursorUp: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("up", "cursor up"),
		),
		CursorDown: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("down", "cursor down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
