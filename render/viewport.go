package render

import "github.com/lixenwraith/term-invaders/core"

// Viewport maps the logical playfield onto a terminal region
// Each axis scales independently
type Viewport struct {
	X, Y          int // Top-left terminal cell of the play area
	Cols, Rows    int // Play area size in cells
	LogicalWidth  int
	LogicalHeight int
}

// NewViewport fits the playfield between one HUD row at the top and one at the bottom
func NewViewport(termWidth, termHeight, logicalWidth, logicalHeight int) Viewport {
	rows := termHeight - 2
	if rows < 1 {
		rows = 1
	}
	cols := termWidth
	if cols < 1 {
		cols = 1
	}
	return Viewport{
		X:             0,
		Y:             1,
		Cols:          cols,
		Rows:          rows,
		LogicalWidth:  logicalWidth,
		LogicalHeight: logicalHeight,
	}
}

// ToCell converts a logical point to a terminal cell
func (v Viewport) ToCell(x, y int) (int, int) {
	return v.X + floorDiv(x*v.Cols, v.LogicalWidth), v.Y + floorDiv(y*v.Rows, v.LogicalHeight)
}

// CenterCell returns the cell holding the center of a logical box
func (v Viewport) CenterCell(r core.Rect) (int, int) {
	cx, cy := r.Center()
	return v.ToCell(cx, cy)
}

// CellWidth returns how many cells a logical width spans, at least one
func (v Viewport) CellWidth(w int) int {
	cw := w * v.Cols / v.LogicalWidth
	if cw < 1 {
		return 1
	}
	return cw
}

// Contains reports whether a cell lies inside the play area
func (v Viewport) Contains(col, row int) bool {
	return col >= v.X && col < v.X+v.Cols && row >= v.Y && row < v.Y+v.Rows
}

// floorDiv rounds toward negative infinity so off-screen entities stay off-screen
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
