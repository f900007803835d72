package systems

import (
	"time"

	"github.com/lixenwraith/term-invaders/components"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/engine"
)

// SwarmSystem moves the alien formation as one body and animates its members
type SwarmSystem struct {
	width int
}

// NewSwarmSystem creates a swarm system bounded by the playfield width
func NewSwarmSystem(width int) *SwarmSystem {
	return &SwarmSystem{width: width}
}

// Priority returns the system's priority
func (s *SwarmSystem) Priority() int {
	return constants.PrioritySwarm
}

// Update advances the swarm one frame and toggles due animation frames
func (s *SwarmSystem) Update(r *engine.Round, now time.Time) {
	r.Direction = s.Advance(r.Aliens, r.Direction, r.Step)
	s.Animate(r.Aliens, now)
}

// Advance shifts every live alien by step in direction and returns the new direction
// If any alien touches a side edge after the move, the whole swarm reverses and descends once
func (s *SwarmSystem) Advance(aliens []*components.AlienComponent, direction, step int) int {
	if len(aliens) == 0 {
		return direction
	}

	dx := step * direction
	for _, a := range aliens {
		if a.Alive {
			a.Bounds.X += dx
		}
	}

	for _, a := range aliens {
		if !a.Alive {
			continue
		}
		if a.Bounds.Right() >= s.width || a.Bounds.Left() <= 0 {
			for _, b := range aliens {
				b.Bounds.Y += constants.SwarmDescent
			}
			return -direction
		}
	}
	return direction
}

// Animate toggles the frame of each alien whose own timer elapsed
func (s *SwarmSystem) Animate(aliens []*components.AlienComponent, now time.Time) {
	for _, a := range aliens {
		if !a.Alive {
			continue
		}
		if now.Sub(a.LastToggle) >= constants.AlienAnimationInterval {
			a.Frame = (a.Frame + 1) % a.Type.Frames()
			a.LastToggle = now
		}
	}
}
