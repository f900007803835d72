package components

import (
	"time"

	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
)

// ShipComponent is one player's ship together with its score and lives
// Owned by the round for its whole lifetime
type ShipComponent struct {
	Player int    // Zero-based player index, used for scoring attribution
	Name   string // Name entered before the round

	Bounds core.Rect
	Speed  int // Horizontal distance per frame

	Lives int
	Score int
	Alive bool

	// Fire control
	ReadyToFire bool
	LastFire    time.Time

	// DiedAt is zero while the ship is alive
	DiedAt time.Time

	// Lasers fired by this ship that are still in flight
	Lasers []*LaserComponent
}

// NewShip creates a ship centered horizontally at cx, resting on the baseline
func NewShip(player int, name string, cx int) *ShipComponent {
	return &ShipComponent{
		Player:      player,
		Name:        name,
		Bounds:      core.MidBottomAt(cx, constants.ShipBaseline, constants.ShipWidth, constants.ShipHeight),
		Speed:       constants.ShipSpeed,
		Lives:       constants.StartingLives,
		Alive:       true,
		ReadyToFire: true,
	}
}
