package systems

import (
	"time"

	"github.com/lixenwraith/term-invaders/components"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
	"github.com/lixenwraith/term-invaders/engine"
	"github.com/lixenwraith/term-invaders/events"
)

// CombatSystem resolves laser collisions against aliens, bonus ships, blocks and ships
// Each laser interacts with at most one target per frame
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

// Priority returns the system's priority
func (s *CombatSystem) Priority() int {
	return constants.PriorityCombat
}

// Update resolves collisions and drops destroyed entities
func (s *CombatSystem) Update(r *engine.Round, now time.Time) {
	s.Resolve(r, now)
}

// Resolve applies all collisions of the frame, emitting one event per interaction
func (s *CombatSystem) Resolve(r *engine.Round, now time.Time) {
	for _, ship := range r.Ships {
		if !ship.Alive {
			continue
		}
		for _, laser := range ship.Lasers {
			if laser.Alive {
				s.resolvePlayerLaser(r, ship, laser, now)
			}
		}
	}

	for _, laser := range r.AlienLasers {
		if laser.Alive {
			s.resolveAlienLaser(r, laser, now)
		}
	}

	s.sweep(r)
}

func (s *CombatSystem) resolvePlayerLaser(r *engine.Round, ship *components.ShipComponent, laser *components.LaserComponent, now time.Time) {
	if alien := firstAlien(r.Aliens, laser.Bounds); alien != nil {
		alien.Alive = false
		laser.Alive = false
		points := alien.Type.Points()
		ship.Score += points

		cx, cy := alien.Bounds.Center()
		r.Explosions = append(r.Explosions, components.NewExplosion(alien.Type, cx, cy, now))
		r.Events.Emit(events.EventAlienKilled, &events.AlienKilledPayload{
			Player: ship.Player,
			Type:   alien.Type,
			Points: points,
			X:      cx,
			Y:      cy,
		})
		return
	}

	for _, b := range r.Bonuses {
		if b.Alive && laser.Bounds.Overlaps(b.Bounds) {
			b.Alive = false
			laser.Alive = false
			ship.Score += constants.PointsBonus
			r.Events.Emit(events.EventBonusKilled, &events.BonusKilledPayload{
				Player: ship.Player,
				Points: constants.PointsBonus,
			})
			return
		}
	}

	// Player lasers pass through barriers; only single mode registers the overlap
	if r.Mode == core.ModeSingle && firstBlock(r.Blocks, laser.Bounds) != nil {
		r.Events.Emit(events.EventLaserPassedBarrier, &events.BarrierPassPayload{Player: ship.Player})
	}
}

func (s *CombatSystem) resolveAlienLaser(r *engine.Round, laser *components.LaserComponent, now time.Time) {
	if block := firstBlock(r.Blocks, laser.Bounds); block != nil {
		block.Alive = false
		laser.Alive = false
		r.Events.Emit(events.EventBlockDestroyed, &events.BlockDestroyedPayload{X: block.Bounds.X, Y: block.Bounds.Y})
		return
	}

	for _, ship := range r.Ships {
		if !ship.Alive || !laser.Bounds.Overlaps(ship.Bounds) {
			continue
		}
		laser.Alive = false
		s.hitShip(r, ship, now)
		return
	}
}

// hitShip removes one life; the ship dies exactly once at zero lives
func (s *CombatSystem) hitShip(r *engine.Round, ship *components.ShipComponent, now time.Time) {
	if ship.Lives > 0 {
		ship.Lives--
	}
	r.Events.Emit(events.EventShipHit, &events.ShipHitPayload{Player: ship.Player, LivesLeft: ship.Lives})

	if ship.Lives == 0 {
		ship.Alive = false
		ship.DiedAt = now
		ship.Lasers = nil
		r.Events.Emit(events.EventShipDestroyed, &events.ShipDestroyedPayload{Player: ship.Player, Score: ship.Score})
	}
}

func (s *CombatSystem) sweep(r *engine.Round) {
	r.Aliens = engine.Compact(r.Aliens, func(a *components.AlienComponent) bool { return a.Alive })
	r.Blocks = engine.Compact(r.Blocks, func(b *components.BlockComponent) bool { return b.Alive })
	r.Bonuses = engine.Compact(r.Bonuses, func(b *components.BonusComponent) bool { return b.Alive })
	r.AlienLasers = engine.Compact(r.AlienLasers, func(l *components.LaserComponent) bool { return l.Alive })
	for _, ship := range r.Ships {
		ship.Lasers = engine.Compact(ship.Lasers, func(l *components.LaserComponent) bool { return l.Alive })
	}
}

func firstAlien(aliens []*components.AlienComponent, box core.Rect) *components.AlienComponent {
	for _, a := range aliens {
		if a.Alive && box.Overlaps(a.Bounds) {
			return a
		}
	}
	return nil
}

func firstBlock(blocks []*components.BlockComponent, box core.Rect) *components.BlockComponent {
	for _, b := range blocks {
		if b.Alive && box.Overlaps(b.Bounds) {
			return b
		}
	}
	return nil
}
