package engine

import "time"

// System is one stage of the per-frame update pass
type System interface {
	Update(r *Round, now time.Time)
	Priority() int // Lower values run first
}

// InputState is one player's controls for a frame
type InputState struct {
	Left  bool
	Right bool
	Fire  bool
}

// Direction returns -1, 0 or +1; opposite keys held together cancel out
func (in InputState) Direction() int {
	d := 0
	if in.Left {
		d--
	}
	if in.Right {
		d++
	}
	return d
}
