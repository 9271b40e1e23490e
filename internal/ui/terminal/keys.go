package terminal

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle key.Binding
	Grow   key.Binding
	Shrink key.Binding
	Stop   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/stop")),
		Grow:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "bigger")),
		Shrink: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "smaller")),
		Stop:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stop")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (keys keyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Toggle, keys.Grow, keys.Shrink, keys.Quit}
}

func (keys keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{keys.Toggle, keys.Stop}, {keys.Grow, keys.Shrink, keys.Quit}}
}
