package systems

import (
	"time"

	"github.com/lixenwraith/term-invaders/components"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/engine"
)

// ProjectileSystem moves lasers vertically and culls those that left the playfield
type ProjectileSystem struct {
	height int
}

func NewProjectileSystem(height int) *ProjectileSystem {
	return &ProjectileSystem{height: height}
}

// Priority returns the system's priority
func (s *ProjectileSystem) Priority() int {
	return constants.PriorityProjectile
}

// Update moves player and alien lasers
func (s *ProjectileSystem) Update(r *engine.Round, now time.Time) {
	for _, ship := range r.Ships {
		ship.Lasers = s.step(ship.Lasers)
	}
	r.AlienLasers = s.step(r.AlienLasers)
}

func (s *ProjectileSystem) step(lasers []*components.LaserComponent) []*components.LaserComponent {
	for _, l := range lasers {
		if !l.Alive {
			continue
		}
		l.Bounds.Y += l.Speed
		if s.outOfBounds(l) {
			l.Alive = false
		}
	}
	return engine.Compact(lasers, func(l *components.LaserComponent) bool { return l.Alive })
}

// outOfBounds tests the top edge against the cull margin
func (s *ProjectileSystem) outOfBounds(l *components.LaserComponent) bool {
	y := l.Bounds.Top()
	return y <= -constants.LaserCullMargin || y >= s.height+constants.LaserCullMargin
}
