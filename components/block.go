package components

import (
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
)

// BlockComponent is one destructible barrier cell
type BlockComponent struct {
	Bounds core.Rect
	Alive  bool
}

// NewBlock creates a live block with its top-left corner at (x, y)
func NewBlock(x, y int) *BlockComponent {
	return &BlockComponent{
		Bounds: core.Rect{X: x, Y: y, Width: constants.BlockSize, Height: constants.BlockSize},
		Alive:  true,
	}
}
