package components

import (
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
)

// BonusSide is the screen edge a bonus ship enters from
type BonusSide uint8

const (
	SideLeft BonusSide = iota
	SideRight
)

// BonusComponent is the transient mystery ship
type BonusComponent struct {
	Bounds core.Rect
	Speed  int // Signed horizontal speed per frame
	Alive  bool
}

// NewBonus creates a bonus ship just outside the given edge, heading inward
func NewBonus(side BonusSide, screenWidth int) *BonusComponent {
	b := &BonusComponent{
		Bounds: core.Rect{
			Y:      constants.BonusY,
			Width:  constants.BonusWidth,
			Height: constants.BonusHeight,
		},
		Alive: true,
	}
	if side == SideRight {
		b.Bounds.X = screenWidth + constants.BonusEntryOffset
		b.Speed = -constants.BonusSpeed
	} else {
		b.Bounds.X = -constants.BonusEntryOffset
		b.Speed = constants.BonusSpeed
	}
	return b
}
