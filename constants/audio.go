package constants

import "time"

// Speaker buffering
const (
	// AudioBufferDuration is the speaker buffer length; larger values add latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Shoot Sound Timing
const (
	ShootSoundDuration = 120 * time.Millisecond
	ShootSoundAttack   = 2 * time.Millisecond
	ShootSoundRelease  = 60 * time.Millisecond
)

// Alien Shoot Sound Timing
const (
	AlienShootSoundDuration = 100 * time.Millisecond
	AlienShootSoundAttack   = 5 * time.Millisecond
	AlienShootSoundRelease  = 50 * time.Millisecond
)

// Invader Killed Sound Timing
const (
	InvaderKilledSoundDuration = 180 * time.Millisecond
	InvaderKilledSoundAttack   = 2 * time.Millisecond
	InvaderKilledSoundRelease  = 120 * time.Millisecond
)

// Mystery Entered Sound Timing
const (
	MysteryEnteredNoteDuration = 70 * time.Millisecond
	MysteryEnteredNoteAttack   = 10 * time.Millisecond
	MysteryEnteredNoteRelease  = 20 * time.Millisecond
	MysteryEnteredNoteCount    = 4
)

// Mystery Killed Sound Timing
const (
	MysteryKilledNoteDuration = 90 * time.Millisecond
	MysteryKilledNoteAttack   = 3 * time.Millisecond
	MysteryKilledNoteRelease  = 40 * time.Millisecond
	MysteryKilledFinalRelease = 200 * time.Millisecond
)

// Ship Explosion Sound Timing
const (
	ShipExplosionSoundDuration = 600 * time.Millisecond
	ShipExplosionSoundAttack   = 5 * time.Millisecond
	ShipExplosionSoundRelease  = 450 * time.Millisecond
)
