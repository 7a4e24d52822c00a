package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	togglePlay key.Binding
	comment    key.Binding
	submit     key.Binding
	cancel     key.Binding
	log        key.Binding
	reset      key.Binding
	up         key.Binding
	down       key.Binding
	longer     key.Binding
	shorter    key.Binding
	help       key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" ", "p"),
		key.WithHelp("space", "start/pause"),
	),
	comment: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "comment"),
	),
	submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	log: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "log"),
	),
	reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "select"),
	),
	down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "select"),
	),
	longer: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "add a minute"),
	),
	shorter: key.NewBinding(
		key.WithKeys("-", "_"),
		key.WithHelp("-", "remove a minute"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.togglePlay, k.comment, k.log, k.help, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.togglePlay, k.reset, k.quit},
		{k.comment, k.log},
		{k.up, k.down, k.longer, k.shorter},
	}
}
