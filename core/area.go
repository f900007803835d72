package core

// Rect is an axis-aligned bounding box in playfield units
type Rect struct {
	X, Y          int // Top-left corner
	Width, Height int
}

// Left returns the x coordinate of the left edge
func (r Rect) Left() int { return r.X }

// Right returns the x coordinate of the right edge
func (r Rect) Right() int { return r.X + r.Width }

// Top returns the y coordinate of the top edge
func (r Rect) Top() int { return r.Y }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() int { return r.Y + r.Height }

// Center returns the integer center point
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Overlaps reports whether two boxes share any interior area
// Touching edges do not count as overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

// Translate returns the box moved by (dx, dy)
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// CenteredAt returns a box of the given size whose center is (cx, cy)
func CenteredAt(cx, cy, width, height int) Rect {
	return Rect{X: cx - width/2, Y: cy - height/2, Width: width, Height: height}
}

// MidBottomAt returns a box of the given size whose bottom edge midpoint is (cx, bottom)
func MidBottomAt(cx, bottom, width, height int) Rect {
	return Rect{X: cx - width/2, Y: bottom - height, Width: width, Height: height}
}
