package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit  key.Binding
	Theme key.Binding
	Help  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Quit, k.Theme, k.Help}
}
