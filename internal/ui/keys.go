package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings shown in the help line and the help popup.
// Dispatch itself lives in the input modes.
type keyMap struct {
	Focus    key.Binding
	Search   key.Binding
	Up       key.Binding
	Down     key.Binding
	Category key.Binding
	PageSize key.Binding
	Download key.Binding
	Open     key.Binding
	Copy     key.Binding
	Details  key.Binding
	Repeat   key.Binding
	Health   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Focus:    key.NewBinding(key.WithKeys("tab", "/"), key.WithHelp("tab", "ticker/table")),
		Search:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		PageSize: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "page size")),
		Download: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "download pdf")),
		Open:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open on fnet")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		Details:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "details")),
		Repeat:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "search again")),
		Health:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "check API")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Search, k.Download, k.Open, k.Category, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus, k.Search, k.Repeat},
		{k.Category, k.PageSize},
		{k.Download, k.Open, k.Copy, k.Details},
		{k.Health, k.Help, k.Quit},
	}
}
