package constants

import "time"

// Round Lifecycle
const (
	// StartingLives is the number of lives each ship begins a round with
	StartingLives = 3

	// LevelPause is how long the round holds after a level is cleared
	LevelPause = 1 * time.Second

	// ResultsDisplayDuration is how long the game over / victory screen stays up
	ResultsDisplayDuration = 5 * time.Second

	// CaretBlinkInterval is the half period of the name prompt caret
	CaretBlinkInterval = 500 * time.Millisecond

	// RankingSize is the number of entries kept per ranking store
	RankingSize = 5

	// MaxNameLength is the maximum number of runes accepted at the name prompt
	MaxNameLength = 10
)

// Round Timers
const (
	// AlienFireInterval is the fixed period between alien shots
	AlienFireInterval = 800 * time.Millisecond

	// BonusSpawnMin and BonusSpawnMax bound the uniform random bonus ship delay
	BonusSpawnMin = 4000 * time.Millisecond
	BonusSpawnMax = 8000 * time.Millisecond
)

// Scoring
const (
	PointsLow   = 10
	PointsMid   = 20
	PointsHigh  = 30
	PointsBonus = 50
)
