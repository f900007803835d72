package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventLaserFired signals a ship fired
	// Trigger: ShipSystem when cooldown allows | Payload: *LaserFiredPayload
	EventLaserFired EventType = iota

	// EventAlienFired signals a randomly selected alien fired
	// Trigger: RoundSystem alien fire timer | Payload: nil
	EventAlienFired

	// EventAlienKilled signals a player laser destroyed an alien
	// Trigger: CombatSystem | Payload: *AlienKilledPayload
	EventAlienKilled

	// EventBonusEntered signals a bonus ship entered the screen
	// Trigger: RoundSystem bonus timer | Payload: *BonusEnteredPayload
	EventBonusEntered

	// EventBonusKilled signals a player laser destroyed the bonus ship
	// Trigger: CombatSystem | Payload: *BonusKilledPayload
	EventBonusKilled

	// EventBonusEscaped signals a bonus ship left the screen unharmed
	// Trigger: BonusSystem | Payload: nil
	EventBonusEscaped

	// EventLaserPassedBarrier signals a player laser overlapping a block in single-player
	// Neither entity is affected
	// Trigger: CombatSystem | Payload: *BarrierPassPayload
	EventLaserPassedBarrier

	// EventBlockDestroyed signals an alien laser eroded a barrier cell
	// Trigger: CombatSystem | Payload: *BlockDestroyedPayload
	EventBlockDestroyed

	// EventShipHit signals an alien laser hit a live ship
	// Trigger: CombatSystem | Payload: *ShipHitPayload
	EventShipHit

	// EventShipDestroyed signals a ship lost its last life
	// Emitted exactly once per ship
	// Trigger: CombatSystem | Payload: *ShipDestroyedPayload
	EventShipDestroyed

	// EventLevelCleared signals the swarm became empty
	// Trigger: RoundSystem | Payload: *LevelPayload
	EventLevelCleared

	// EventLevelStarted signals a fresh swarm entered play
	// Trigger: RoundSystem on round start and after the level pause | Payload: *LevelPayload
	EventLevelStarted

	// EventGameOver signals all ships are dead
	// Trigger: RoundSystem | Payload: *RoundEndPayload
	EventGameOver

	// EventVictory signals the last level was cleared
	// Trigger: RoundSystem | Payload: *RoundEndPayload
	EventVictory

	// EventPauseToggled signals the round clock was paused or resumed
	// Trigger: RoundSystem | Payload: *PausePayload
	EventPauseToggled

	eventTypeCount
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64
	Timestamp time.Time
}
