package engine

import (
	"time"

	"github.com/lixenwraith/term-invaders/components"
	"github.com/lixenwraith/term-invaders/core"
)

// ShipView is a read-only copy of a ship for presentation
type ShipView struct {
	Player int
	Name   string
	Bounds core.Rect
	Lives  int
	Score  int
	Alive  bool
	DiedAt time.Time
}

// LaserView is a read-only copy of a laser
type LaserView struct {
	Source components.LaserSource
	Bounds core.Rect
}

// AlienView is a read-only copy of an alien
type AlienView struct {
	Type   components.AlienType
	Bounds core.Rect
	Frame  int
}

// ExplosionView is a read-only copy of an explosion with its age
type ExplosionView struct {
	Type   components.AlienType
	Bounds core.Rect
	Age    time.Duration
}

// Snapshot is the per-frame view of a round handed to the renderer
// It shares no memory with the round
type Snapshot struct {
	Mode       core.PlayMode
	Phase      RoundPhase
	Level      int // Zero-based
	LevelCount int
	Paused     bool
	Time       time.Time

	Width  int
	Height int

	Ships      []ShipView
	Lasers     []LaserView
	Aliens     []AlienView
	Blocks     []core.Rect
	Bonuses    []core.Rect
	Explosions []ExplosionView

	Total int
}

// Snapshot copies the round state at now
func (r *Round) Snapshot(now time.Time, levelCount int, paused bool) Snapshot {
	s := Snapshot{
		Mode:       r.Mode,
		Phase:      r.Phase,
		Level:      r.Level,
		LevelCount: levelCount,
		Paused:     paused,
		Time:       now,
		Width:      r.Config.Width,
		Height:     r.Config.Height,
		Total:      r.TotalScore(),
		Ships:      make([]ShipView, 0, len(r.Ships)),
		Aliens:     make([]AlienView, 0, len(r.Aliens)),
		Blocks:     make([]core.Rect, 0, len(r.Blocks)),
	}

	for _, ship := range r.Ships {
		s.Ships = append(s.Ships, ShipView{
			Player: ship.Player,
			Name:   ship.Name,
			Bounds: ship.Bounds,
			Lives:  ship.Lives,
			Score:  ship.Score,
			Alive:  ship.Alive,
			DiedAt: ship.DiedAt,
		})
		for _, l := range ship.Lasers {
			if l.Alive {
				s.Lasers = append(s.Lasers, LaserView{Source: l.Source, Bounds: l.Bounds})
			}
		}
	}
	for _, l := range r.AlienLasers {
		if l.Alive {
			s.Lasers = append(s.Lasers, LaserView{Source: l.Source, Bounds: l.Bounds})
		}
	}
	for _, a := range r.Aliens {
		if a.Alive {
			s.Aliens = append(s.Aliens, AlienView{Type: a.Type, Bounds: a.Bounds, Frame: a.Frame})
		}
	}
	for _, b := range r.Blocks {
		if b.Alive {
			s.Blocks = append(s.Blocks, b.Bounds)
		}
	}
	for _, b := range r.Bonuses {
		if b.Alive {
			s.Bonuses = append(s.Bonuses, b.Bounds)
		}
	}
	for _, e := range r.Explosions {
		s.Explosions = append(s.Explosions, ExplosionView{Type: e.Type, Bounds: e.Bounds, Age: now.Sub(e.SpawnTime)})
	}

	return s
}
