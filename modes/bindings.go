package modes

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-invaders/core"
)

// Control is one of the three ship controls
type Control uint8

const (
	ControlLeft Control = iota
	ControlRight
	ControlFire
	controlCount
)

// Binding maps a key to a player's control
type Binding struct {
	Player  int
	Control Control
}

// BindingTable holds the key bindings of one play mode
type BindingTable struct {
	keys  map[tcell.Key]Binding
	runes map[rune]Binding
}

// SingleBindings: arrows or a/d move, space or up/w fires
func SingleBindings() *BindingTable {
	return &BindingTable{
		keys: map[tcell.Key]Binding{
			tcell.KeyLeft:  {0, ControlLeft},
			tcell.KeyRight: {0, ControlRight},
			tcell.KeyUp:    {0, ControlFire},
		},
		runes: map[rune]Binding{
			'a': {0, ControlLeft},
			'd': {0, ControlRight},
			'w': {0, ControlFire},
			' ': {0, ControlFire},
		},
	}
}

// MultiBindings: player 1 on a/d/w, player 2 on the arrows
func MultiBindings() *BindingTable {
	return &BindingTable{
		keys: map[tcell.Key]Binding{
			tcell.KeyLeft:  {1, ControlLeft},
			tcell.KeyRight: {1, ControlRight},
			tcell.KeyUp:    {1, ControlFire},
		},
		runes: map[rune]Binding{
			'a': {0, ControlLeft},
			'd': {0, ControlRight},
			'w': {0, ControlFire},
		},
	}
}

// BindingsFor returns the table for mode
func BindingsFor(mode core.PlayMode) *BindingTable {
	if mode == core.ModeMulti {
		return MultiBindings()
	}
	return SingleBindings()
}

// Lookup resolves a key event; letters match regardless of case
func (t *BindingTable) Lookup(ev *tcell.EventKey) (Binding, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := t.runes[unicode.ToLower(ev.Rune())]
		return b, ok
	}
	b, ok := t.keys[ev.Key()]
	return b, ok
}
