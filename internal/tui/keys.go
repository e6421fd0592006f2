package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	logout   key.Binding
	newChat  key.Binding
	sessions key.Binding
	copy     key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	yes      key.Binding
	no       key.Binding
}

// Chat screen bindings use ctrl chords because plain letters go to the
// message input.
var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("ctrl+l")),
	newChat:  key.NewBinding(key.WithKeys("ctrl+n")),
	sessions: key.NewBinding(key.WithKeys("ctrl+o")),
	copy:     key.NewBinding(key.WithKeys("ctrl+y")),
	pageUp:   key.NewBinding(key.WithKeys("pgup")),
	pageDown: key.NewBinding(key.WithKeys("pgdown")),
	yes:      key.NewBinding(key.WithKeys("y", "Y")),
	no:       key.NewBinding(key.WithKeys("n", "N")),
}
