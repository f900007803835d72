package systems

import (
	"time"

	"github.com/lixenwraith/term-invaders/components"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/engine"
	"github.com/lixenwraith/term-invaders/events"
)

// AlienFireSystem makes one random live alien shoot whenever the fire timer is due
type AlienFireSystem struct{}

func NewAlienFireSystem() *AlienFireSystem {
	return &AlienFireSystem{}
}

// Priority returns the system's priority
func (s *AlienFireSystem) Priority() int {
	return constants.PriorityAlienFire
}

// Update fires at most once per tick
func (s *AlienFireSystem) Update(r *engine.Round, now time.Time) {
	if !r.FireTimer.Due(now) {
		return
	}

	shooter := s.pick(r)
	if shooter == nil {
		return
	}
	cx, cy := shooter.Bounds.Center()
	r.AlienLasers = append(r.AlienLasers, components.NewAlienLaser(cx, cy))
	r.Events.Emit(events.EventAlienFired, nil)
}

// pick selects a live alien uniformly at random
func (s *AlienFireSystem) pick(r *engine.Round) *components.AlienComponent {
	live := make([]*components.AlienComponent, 0, len(r.Aliens))
	for _, a := range r.Aliens {
		if a.Alive {
			live = append(live, a)
		}
	}
	if len(live) == 0 {
		return nil
	}
	return live[r.Rng.Intn(len(live))]
}
