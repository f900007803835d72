// @focus: #flow { state } #control { types }
package core

// PlayMode selects between one ship and two local ships sharing the screen
type PlayMode uint8

const (
	ModeSingle PlayMode = iota
	ModeMulti
)

// String returns the mode name used in file names and logs
func (m PlayMode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// Players returns the number of ships a round in this mode owns
func (m PlayMode) Players() int {
	if m == ModeMulti {
		return 2
	}
	return 1
}
