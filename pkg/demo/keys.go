package demo

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the playground's bindings.
type KeyMap struct {
	Info    key.Binding
	Success key.Binding
	Warning key.Binding
	Error   key.Binding
	Banner  key.Binding
	Dismiss key.Binding
	Up      key.Binding
	Down    key.Binding
	Home    key.Binding
	End     key.Binding
	Next    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default playground bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Info:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Success: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "success")),
		Warning: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "warning")),
		Error:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "error")),
		Banner:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "toggle banner")),
		Dismiss: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dismiss")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		End:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch list")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Success, k.Error, k.Banner, k.Dismiss, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Info, k.Success, k.Warning, k.Error},
		{k.Banner, k.Dismiss},
		{k.Up, k.Down, k.Home, k.End, k.Next},
		{k.Help, k.Quit},
	}
}
