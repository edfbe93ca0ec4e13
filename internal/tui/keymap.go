package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/san-kum/lorenz/internal/interact"
)

// keyMap mirrors interact.Bindings as bubbles bindings so the help view can
// list them. Help itself is local to the terminal viewer.
type keyMap struct {
	Help   key.Binding
	events []key.Binding
}

func newKeyMap() keyMap {
	km := keyMap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		events: make([]key.Binding, 0, len(interact.Bindings)),
	}
	for _, b := range interact.Bindings {
		km.events = append(km.events, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(b.Help, b.Desc),
		))
	}
	return km
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	short := []key.Binding{k.Help}
	if len(k.events) > 0 {
		short = append(short, k.events[0])
	}
	return short
}

// FullHelp implements help.KeyMap, four bindings per column.
func (k keyMap) FullHelp() [][]key.Binding {
	all := append([]key.Binding{k.Help}, k.events...)
	var cols [][]key.Binding
	for len(all) > 0 {
		n := min(4, len(all))
		cols = append(cols, all[:n])
		all = all[n:]
	}
	return cols
}
