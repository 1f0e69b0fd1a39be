package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Send     key.Binding
	Back     key.Binding
	NextType key.Binding
	Download key.Binding
	Refresh  key.Binding
	Up       key.Binding
	Down     key.Binding
	Focus    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NextType: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "chat type"),
		),
		Download: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "download pdf"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "refresh"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
	}
}

// ShortHelp is what the footer shows; FullHelp exists for bubbles/help
// compatibility should a view ever expand it.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.NextType, k.Download, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.NextType, k.Download},
		{k.Up, k.Down, k.Focus},
		{k.Refresh, k.Back, k.Quit},
	}
}
