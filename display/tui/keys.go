package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the dashboard.
// It implements the help.KeyMap interface for bubbles/help integration.
type keyMap struct {
	Quit          key.Binding
	Help          key.Binding
	CycleLayout   key.Binding
	CycleMode     key.Binding
	CycleTileMode key.Binding
	CycleTheme    key.Binding
	Autostart     key.Binding
	FocusNext     key.Binding
	FocusPrev     key.Binding
	MoveLeft      key.Binding
	MoveRight     key.Binding
}

// ShortHelp returns the compact set of keybindings shown by default in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.CycleMode, k.CycleLayout, k.Quit}
}

// FullHelp returns the expanded keybinding groups shown when help is toggled.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.FocusPrev, k.MoveLeft, k.MoveRight},
		{k.CycleMode, k.CycleTileMode, k.CycleLayout, k.CycleTheme},
		{k.Autostart, k.Help, k.Quit},
	}
}

// keys holds the default key bindings used by the dashboard.
var keys = keyMap{
	Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	CycleLayout:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "layout")),
	CycleMode:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "vis mode")),
	CycleTileMode: key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "tile vis mode")),
	CycleTheme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Autostart:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "autostart")),
	FocusNext:     key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next tile")),
	FocusPrev:     key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "prev tile")),
	MoveLeft:      key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "move tile left")),
	MoveRight:     key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "move tile right")),
}
