package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the tutorial understands. It satisfies
// help.KeyMap so the footer hints come straight from the bindings.
type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Jump       key.Binding
	ScrollDown key.Binding
	ScrollUp   key.Binding
	Copy       key.Binding
	TOC        key.Binding
	Examples   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "n", " "),
			key.WithHelp("→/space", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←", "previous"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-6", "jump"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/k", "scroll code"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy code"),
		),
		TOC: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "contents"),
		),
		Examples: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "examples"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Jump},
		{k.ScrollDown, k.Copy, k.TOC},
		{k.Examples, k.Help, k.Quit},
	}
}
