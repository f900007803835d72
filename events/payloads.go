package events

import (
	"github.com/lixenwraith/term-invaders/components"
)

// LaserFiredPayload identifies the firing ship
type LaserFiredPayload struct {
	Player int
}

// AlienKilledPayload carries the scoring attribution and death location
type AlienKilledPayload struct {
	Player int
	Type   components.AlienType
	Points int
	X, Y   int // Former alien center
}

// BonusEnteredPayload carries the entry edge
type BonusEnteredPayload struct {
	Side components.BonusSide
}

// BonusKilledPayload carries the scoring attribution
type BonusKilledPayload struct {
	Player int
	Points int
}

// BarrierPassPayload identifies whose laser crossed a barrier
type BarrierPassPayload struct {
	Player int
}

// BlockDestroyedPayload carries the destroyed cell position
type BlockDestroyedPayload struct {
	X, Y int
}

// ShipHitPayload carries the remaining lives after the hit
type ShipHitPayload struct {
	Player    int
	LivesLeft int
}

// ShipDestroyedPayload carries the final score of the dead ship
type ShipDestroyedPayload struct {
	Player int
	Score  int
}

// LevelPayload carries a zero-based level index
type LevelPayload struct {
	Level int
}

// RoundEndPayload carries the aggregate score written to the ranking
type RoundEndPayload struct {
	Level int
	Total int
}

// PausePayload carries the new pause state
type PausePayload struct {
	Paused bool
}
