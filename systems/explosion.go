package systems

import (
	"time"

	"github.com/lixenwraith/term-invaders/components"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/engine"
)

// ExplosionSystem removes explosion markers past their lifetime
type ExplosionSystem struct{}

func NewExplosionSystem() *ExplosionSystem {
	return &ExplosionSystem{}
}

// Priority returns the system's priority
func (s *ExplosionSystem) Priority() int {
	return constants.PriorityExplosion
}

func (s *ExplosionSystem) Update(r *engine.Round, now time.Time) {
	r.Explosions = engine.Compact(r.Explosions, func(e *components.ExplosionComponent) bool {
		return !e.Expired(now)
	})
}
