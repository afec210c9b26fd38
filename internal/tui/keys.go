package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	next       key.Binding
	prev       key.Binding
	submit     key.Binding
	switchForm key.Binding
	copy       key.Binding
	info       key.Binding
	esc        key.Binding
	quit       key.Binding
}

var keys = keyMap{
	next:       key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	prev:       key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
	switchForm: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "switch form")),
	copy:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy result")),
	info:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "about")),
	esc:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// helpLine renders bindings as "key: desc │ key: desc".
func helpLine(bindings ...key.Binding) string {
	line := ""
	for i, b := range bindings {
		if i > 0 {
			line += " │ "
		}
		line += b.Help().Key + ": " + b.Help().Desc
	}
	return line
}
