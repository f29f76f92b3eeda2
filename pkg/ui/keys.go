package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding of the main screen. It implements help.KeyMap.
type keyMap struct {
	Decrease     key.Binding
	Increase     key.Binding
	DecreaseFast key.Binding
	IncreaseFast key.Binding
	PageDown     key.Binding
	PageUp       key.Binding
	Min          key.Binding
	Max          key.Binding
	Enter        key.Binding
	NextLimit    key.Binding
	PrevLimit    key.Binding
	Zoom         key.Binding
	SelectGas    key.Binding
	Compare      key.Binding
	Copy         key.Binding
	Reference    key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Decrease: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease"),
		),
		Increase: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase"),
		),
		DecreaseFast: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("⇧←/H", "decrease ×10"),
		),
		IncreaseFast: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("⇧→/L", "increase ×10"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "down", "j"),
			key.WithHelp("pgdn/j", "decrease ×100"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "up", "k"),
			key.WithHelp("pgup/k", "increase ×100"),
		),
		Min: key.NewBinding(
			key.WithKeys("home", "0"),
			key.WithHelp("home/0", "zero"),
		),
		Max: key.NewBinding(
			key.WithKeys("end", "$"),
			key.WithHelp("end/$", "full range"),
		),
		Enter: key.NewBinding(
			key.WithKeys("=", "e"),
			key.WithHelp("=", "type a value"),
		),
		NextLimit: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n", "next threshold"),
		),
		PrevLimit: key.NewBinding(
			key.WithKeys("N", "shift+tab"),
			key.WithHelp("N", "previous threshold"),
		),
		Zoom: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "zoom explosive range"),
		),
		SelectGas: key.NewBinding(
			key.WithKeys("g", "/"),
			key.WithHelp("g", "choose gas"),
		),
		Compare: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "compare ranges"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy reading"),
		),
		Reference: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "reference"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrease, k.Increase, k.NextLimit, k.Zoom, k.SelectGas, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Decrease, k.Increase, k.DecreaseFast, k.IncreaseFast, k.PageDown, k.PageUp, k.Min, k.Max, k.Enter},
		{k.NextLimit, k.PrevLimit, k.Zoom},
		{k.SelectGas, k.Compare, k.Copy, k.Reference, k.Help, k.Quit},
	}
}
