package terminal

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Start   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "answer")),
		Start:   key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "start")),
		Restart: key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// answerIndex maps the digit keys 1-9 to answer indexes.
func answerIndex(msg string) (int, bool) {
	if len(msg) != 1 || msg[0] < '1' || msg[0] > '9' {
		return 0, false
	}
	return int(msg[0] - '1'), true
}
