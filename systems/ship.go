package systems

import (
	"time"

	"github.com/lixenwraith/term-invaders/components"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/engine"
	"github.com/lixenwraith/term-invaders/events"
)

// ShipSystem applies player controls: movement, bounds and fire cooldown
type ShipSystem struct {
	width int
}

// NewShipSystem creates a ship system bounded by the playfield width
func NewShipSystem(width int) *ShipSystem {
	return &ShipSystem{width: width}
}

// Priority returns the system's priority
func (s *ShipSystem) Priority() int {
	return constants.PriorityShip
}

// Update ticks every ship with its player's input
func (s *ShipSystem) Update(r *engine.Round, now time.Time) {
	for _, ship := range r.Ships {
		laser := s.Tick(ship, r.InputFor(ship.Player), now)
		if laser == nil {
			continue
		}
		ship.Lasers = append(ship.Lasers, laser)
		r.Events.Emit(events.EventLaserFired, &events.LaserFiredPayload{Player: ship.Player})
	}
}

// Tick moves the ship, fires when allowed and recharges the cannon
// Returns the fired laser, or nil; dead ships ignore input
func (s *ShipSystem) Tick(ship *components.ShipComponent, in engine.InputState, now time.Time) *components.LaserComponent {
	if !ship.Alive {
		return nil
	}

	ship.Bounds.X += in.Direction() * ship.Speed

	var fired *components.LaserComponent
	if in.Fire && ship.ReadyToFire {
		cx, cy := ship.Bounds.Center()
		fired = components.NewPlayerLaser(ship.Player, cx, cy)
		ship.ReadyToFire = false
		ship.LastFire = now
	}

	s.clamp(ship)
	s.recharge(ship, now)
	return fired
}

func (s *ShipSystem) clamp(ship *components.ShipComponent) {
	if ship.Bounds.Left() < 0 {
		ship.Bounds.X = 0
	}
	if ship.Bounds.Right() > s.width {
		ship.Bounds.X = s.width - ship.Bounds.Width
	}
}

func (s *ShipSystem) recharge(ship *components.ShipComponent, now time.Time) {
	if !ship.ReadyToFire && now.Sub(ship.LastFire) >= constants.LaserCooldown {
		ship.ReadyToFire = true
	}
}
