package render

import (
	"math/rand"

	"github.com/gdamore/tcell/v2"
)

const (
	starCount    = 100
	starMinSpeed = 0.5
	starMaxSpeed = 2.0
)

type star struct {
	x, y  float64 // Logical playfield units
	speed float64 // Units per frame
	tint  float64 // 0 dim .. 1 bright
}

// Starfield is the menu backdrop: stars drifting down and respawning above the top edge
type Starfield struct {
	stars  []star
	rng    *rand.Rand
	width  float64
	height float64
}

// NewStarfield scatters stars above a logical area of width x height
func NewStarfield(width, height int, seed int64) *Starfield {
	sf := &Starfield{
		stars:  make([]star, starCount),
		rng:    rand.New(rand.NewSource(seed)),
		width:  float64(width),
		height: float64(height),
	}
	for i := range sf.stars {
		sf.reset(&sf.stars[i])
		// Spread the first wave over the visible area too
		sf.stars[i].y += sf.height * sf.rng.Float64()
	}
	return sf
}

func (sf *Starfield) reset(s *star) {
	s.x = sf.rng.Float64() * sf.width
	s.y = -sf.rng.Float64() * sf.height
	s.speed = starMinSpeed + sf.rng.Float64()*(starMaxSpeed-starMinSpeed)
	s.tint = sf.rng.Float64()
}

// Update advances every star by one frame
func (sf *Starfield) Update() {
	for i := range sf.stars {
		s := &sf.stars[i]
		s.y += s.speed
		if s.y > sf.height {
			sf.reset(s)
		}
	}
}

// Draw plots visible stars; faster stars render brighter
func (sf *Starfield) Draw(screen tcell.Screen, vp Viewport, base tcell.Style) {
	for _, s := range sf.stars {
		if s.y < 0 {
			continue
		}
		col, row := vp.ToCell(int(s.x), int(s.y))
		if !vp.Contains(col, row) {
			continue
		}
		ch := '.'
		if s.speed > (starMinSpeed+starMaxSpeed)/2 {
			ch = '*'
		}
		screen.SetContent(col, row, ch, nil, base.Foreground(Lerp(RgbStarDim, RgbStarBright, s.tint)))
	}
}

// Visible returns how many stars are inside the logical area
func (sf *Starfield) Visible() int {
	n := 0
	for _, s := range sf.stars {
		if s.y >= 0 && s.y <= sf.height {
			n++
		}
	}
	return n
}
