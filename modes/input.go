package modes

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/engine"
)

// Action is the outcome of a key event during a round
type Action uint8

const (
	ActionNone    Action = iota
	ActionControl        // A ship control was pressed
	ActionPause          // Toggle pause
	ActionAbandon        // Leave the round for the menu
	ActionQuit           // Exit the program
)

// InputHandler converts terminal key presses into per-player held controls
// A control stays held for the hold window after its latest press or auto-repeat
type InputHandler struct {
	bindings   *BindingTable
	holdWindow time.Duration
	players    int

	lastPress [constants.MaxPlayers][controlCount]time.Time
}

// NewInputHandler creates a handler for the given bindings and player count
func NewInputHandler(bindings *BindingTable, players int) *InputHandler {
	if players < 1 {
		players = 1
	}
	if players > constants.MaxPlayers {
		players = constants.MaxPlayers
	}
	return &InputHandler{
		bindings:   bindings,
		holdWindow: constants.InputHoldWindow,
		players:    players,
	}
}

// SetHoldWindow overrides the hold window
func (h *InputHandler) SetHoldWindow(d time.Duration) {
	h.holdWindow = d
}

// HandleKey records a key event received at now and classifies it
func (h *InputHandler) HandleKey(ev *tcell.EventKey, now time.Time) Action {
	// Handle exit keys
	if ev.Key() == tcell.KeyCtrlQ || ev.Key() == tcell.KeyCtrlC {
		return ActionQuit
	}
	if ev.Key() == tcell.KeyEscape {
		return ActionAbandon
	}
	if ev.Key() == tcell.KeyRune && (ev.Rune() == 'p' || ev.Rune() == 'P') {
		return ActionPause
	}

	b, ok := h.bindings.Lookup(ev)
	if !ok || b.Player >= h.players {
		return ActionNone
	}
	h.lastPress[b.Player][b.Control] = now
	return ActionControl
}

// State returns the controls of player held at now
func (h *InputHandler) State(player int, now time.Time) engine.InputState {
	if player < 0 || player >= h.players {
		return engine.InputState{}
	}
	return engine.InputState{
		Left:  h.held(player, ControlLeft, now),
		Right: h.held(player, ControlRight, now),
		Fire:  h.held(player, ControlFire, now),
	}
}

// States returns the held controls of every player at now
func (h *InputHandler) States(now time.Time) []engine.InputState {
	states := make([]engine.InputState, h.players)
	for i := range states {
		states[i] = h.State(i, now)
	}
	return states
}

// Reset releases every control
func (h *InputHandler) Reset() {
	h.lastPress = [constants.MaxPlayers][controlCount]time.Time{}
}

func (h *InputHandler) held(player int, c Control, now time.Time) bool {
	last := h.lastPress[player][c]
	if last.IsZero() {
		return false
	}
	return now.Sub(last) < h.holdWindow
}
