package systems

import (
	"time"

	"github.com/lixenwraith/term-invaders/components"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/engine"
	"github.com/lixenwraith/term-invaders/events"
)

// BonusSystem spawns mystery ships on the bonus timer and flies them across
type BonusSystem struct {
	width int
}

func NewBonusSystem(width int) *BonusSystem {
	return &BonusSystem{width: width}
}

// Priority returns the system's priority
func (s *BonusSystem) Priority() int {
	return constants.PriorityBonus
}

// Update spawns, moves and culls bonus ships
func (s *BonusSystem) Update(r *engine.Round, now time.Time) {
	if r.BonusTimer.Due(now) {
		side := components.SideLeft
		if r.Rng.Intn(2) == 1 {
			side = components.SideRight
		}
		r.Bonuses = append(r.Bonuses, components.NewBonus(side, s.width))
		r.Events.Emit(events.EventBonusEntered, &events.BonusEnteredPayload{Side: side})
	}

	for _, b := range r.Bonuses {
		if !b.Alive {
			continue
		}
		b.Bounds.X += b.Speed
		if s.escaped(b) {
			b.Alive = false
			r.Events.Emit(events.EventBonusEscaped, nil)
		}
	}

	r.Bonuses = engine.Compact(r.Bonuses, func(b *components.BonusComponent) bool { return b.Alive })
}

// escaped reports whether the ship is fully past the edge opposite its entry
func (s *BonusSystem) escaped(b *components.BonusComponent) bool {
	if b.Speed > 0 {
		return b.Bounds.Left() > s.width
	}
	return b.Bounds.Right() < 0
}
