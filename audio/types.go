package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundShoot          SoundType = iota // Player laser
	SoundAlienShoot                      // Alien laser
	SoundInvaderKilled                   // Alien destroyed
	SoundMysteryEntered                  // Bonus ship appears
	SoundMysteryKilled                   // Bonus ship destroyed
	SoundShipExplosion                   // Player ship hit
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundShoot:          "shoot",
	SoundAlienShoot:     "alien_shoot",
	SoundInvaderKilled:  "invader_killed",
	SoundMysteryEntered: "mystery_entered",
	SoundMysteryKilled:  "mystery_killed",
	SoundShipExplosion:  "ship_explosion",
}

// String returns the config key of the sound
func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// soundTypeByName resolves a config key back to its SoundType
func soundTypeByName(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
