// Package keymap defines the key bindings of the UI.
package keymap

import "github.com/charmbracelet/bubbles/key"

// KeyMap is a map of key bindings for the UI.
type KeyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Back    key.Binding
	Dismiss key.Binding

	// List
	Up      key.Binding
	Down    key.Binding
	New     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Toggle  key.Binding
	Test    key.Binding
	Logs    key.Binding
	Refresh key.Binding

	// Form
	NextField     key.Binding
	PrevField     key.Binding
	Submit        key.Binding
	AddTrigger    key.Binding
	RemoveTrigger key.Binding
	CycleNext     key.Binding
	CyclePrev     key.Binding
	Check         key.Binding

	// Logs
	Expand key.Binding

	// Confirmation
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the default key map.
func DefaultKeyMap() *KeyMap {
	km := new(KeyMap)

	km.Quit = key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	)

	km.Help = key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	)

	km.Back = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	)

	km.Dismiss = key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "dismiss"),
	)

	km.Up = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	)

	km.Down = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	)

	km.New = key.NewBinding(
		key.WithKeys("n", "a"),
		key.WithHelp("n", "new"),
	)

	km.Edit = key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	)

	km.Delete = key.NewBinding(
		key.WithKeys("d", "x"),
		key.WithHelp("d", "delete"),
	)

	km.Toggle = key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "enable/disable"),
	)

	km.Test = key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "test"),
	)

	km.Logs = key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "logs"),
	)

	km.Refresh = key.NewBinding(
		key.WithKeys("r", "ctrl+r"),
		key.WithHelp("r", "refresh"),
	)

	km.NextField = key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	)

	km.PrevField = key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	)

	km.Submit = key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	)

	km.AddTrigger = key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "add trigger"),
	)

	km.RemoveTrigger = key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "remove trigger"),
	)

	km.CycleNext = key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("←/→", "change"),
	)

	km.CyclePrev = key.NewBinding(
		key.WithKeys("left"),
	)

	km.Check = key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	)

	km.Expand = key.NewBinding(
		key.WithKeys("enter", "p"),
		key.WithHelp("enter", "payload"),
	)

	km.Confirm = key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	)

	km.Cancel = key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n", "no"),
	)

	return km
}
