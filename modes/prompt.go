package modes

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-invaders/constants"
)

// PromptResult is the state of a text prompt after a key event
type PromptResult uint8

const (
	PromptPending PromptResult = iota
	PromptAccepted
	PromptCancelled
	PromptQuit
)

// TextPrompt collects a player name: letters and digits only, bounded length
type TextPrompt struct {
	Label string
	buf   []rune
	max   int
}

// NewTextPrompt creates an empty prompt with the default name length
func NewTextPrompt(label string) *TextPrompt {
	return &TextPrompt{Label: label, max: constants.MaxNameLength}
}

// HandleKey applies a key event to the buffer
// Enter accepts only a non-empty name
func (p *TextPrompt) HandleKey(ev *tcell.EventKey) PromptResult {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return PromptQuit
	case tcell.KeyEscape:
		return PromptCancelled
	case tcell.KeyEnter:
		if len(p.buf) > 0 {
			return PromptAccepted
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.buf) > 0 {
			p.buf = p.buf[:len(p.buf)-1]
		}
	case tcell.KeyRune:
		r := ev.Rune()
		if len(p.buf) < p.max && r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			p.buf = append(p.buf, r)
		}
	}
	return PromptPending
}

// Text returns the current buffer
func (p *TextPrompt) Text() string {
	return string(p.buf)
}

// Reset clears the buffer and sets a new label
func (p *TextPrompt) Reset(label string) {
	p.Label = label
	p.buf = p.buf[:0]
}
