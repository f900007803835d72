package components

import (
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
)

// LaserSource identifies who fired a laser
type LaserSource uint8

const (
	SourcePlayer LaserSource = iota
	SourceAlien
)

// LaserComponent is a projectile travelling vertically
type LaserComponent struct {
	Source LaserSource
	Owner  int // Player index for SourcePlayer, -1 for aliens
	Bounds core.Rect
	Speed  int // Signed vertical speed per frame
	Alive  bool
}

// NewPlayerLaser creates an upward laser centered on (cx, cy)
func NewPlayerLaser(owner, cx, cy int) *LaserComponent {
	return &LaserComponent{
		Source: SourcePlayer,
		Owner:  owner,
		Bounds: core.CenteredAt(cx, cy, constants.LaserWidth, constants.LaserHeight),
		Speed:  constants.PlayerLaserSpeed,
		Alive:  true,
	}
}

// NewAlienLaser creates a downward laser centered on (cx, cy)
func NewAlienLaser(cx, cy int) *LaserComponent {
	return &LaserComponent{
		Source: SourceAlien,
		Owner:  -1,
		Bounds: core.CenteredAt(cx, cy, constants.LaserWidth, constants.LaserHeight),
		Speed:  constants.AlienLaserSpeed,
		Alive:  true,
	}
}
