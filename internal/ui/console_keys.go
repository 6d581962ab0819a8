package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ConsoleKeys are the soundboard shortcuts. Most map straight onto a "$" command.
type ConsoleKeys struct {
	Banks      key.Binding
	Burst      key.Binding
	Command    key.Binding
	Help       key.Binding
	Mute       key.Binding
	Quit       key.Binding
	Random     key.Binding
	Stop       key.Binding
	VolumeDown key.Binding
	VolumeUp   key.Binding
}

// NewConsoleKeys returns the default console bindings
func NewConsoleKeys() ConsoleKeys {
	return ConsoleKeys{
		Banks:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "next sound in bank")),
		Burst:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "random burst")),
		Command:    key.NewBinding(key.WithKeys(":", "$"), key.WithHelp(":", "type a command")),
		Help:       key.NewBinding(key.WithKeys("?", "h"), key.WithHelp("?", "toggle help")),
		Mute:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "stop random and mute")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Random:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "start random")),
		Stop:       key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "stop")),
		VolumeDown: key.NewBinding(key.WithKeys("-", "down"), key.WithHelp("-", "volume down")),
		VolumeUp:   key.NewBinding(key.WithKeys("+", "=", "up"), key.WithHelp("+", "volume up")),
	}
}

// ShortHelp implements help.KeyMap
func (k ConsoleKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Banks, k.Random, k.Stop, k.VolumeUp, k.VolumeDown, k.Command, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k ConsoleKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Banks, k.Random, k.Burst, k.Stop, k.Mute},
		{k.VolumeUp, k.VolumeDown, k.Command, k.Help, k.Quit},
	}
}

// commandFor maps a shortcut onto the sound command it sends ("" for none)
func (k ConsoleKeys) commandFor(msg tea.KeyMsg) string {
	switch {
	case key.Matches(msg, k.Banks):
		return "$" + msg.String()
	case key.Matches(msg, k.Burst):
		return "$E"
	case key.Matches(msg, k.Mute):
		return "$O"
	case key.Matches(msg, k.Random):
		return "$R"
	case key.Matches(msg, k.Stop):
		return "$s"
	case key.Matches(msg, k.VolumeDown):
		return "$-"
	case key.Matches(msg, k.VolumeUp):
		return "$+"
	}
	return ""
}
