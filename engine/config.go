package engine

import (
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
	"github.com/lixenwraith/term-invaders/pattern"
)

// RoundConfig gathers the tunables of one round
type RoundConfig struct {
	Mode core.PlayMode

	// Playfield in logical units
	Width  int
	Height int

	StartLevel int // Zero-based index of the first level pattern
	Lives      int // Starting lives per ship

	LevelPause        time.Duration // Frozen interval between levels
	AlienFireInterval time.Duration
	BonusSpawnMin     time.Duration
	BonusSpawnMax     time.Duration

	Seed int64 // Random source seed; 0 selects a time-based seed
}

// DefaultRoundConfig returns the stock configuration for mode
func DefaultRoundConfig(mode core.PlayMode) RoundConfig {
	return RoundConfig{
		Mode:              mode,
		Width:             constants.ScreenWidth,
		Height:            constants.ScreenHeight,
		Lives:             constants.StartingLives,
		LevelPause:        constants.LevelPause,
		AlienFireInterval: constants.AlienFireInterval,
		BonusSpawnMin:     constants.BonusSpawnMin,
		BonusSpawnMax:     constants.BonusSpawnMax,
	}
}

// LoadRoundConfig returns the default configuration with environment overrides applied
func LoadRoundConfig(mode core.PlayMode) RoundConfig {
	cfg := DefaultRoundConfig(mode)

	// Inter-level pause in milliseconds, 0 disables the hold
	if pause := os.Getenv("TERM_INVADERS_LEVEL_PAUSE_MS"); pause != "" {
		if val, err := strconv.Atoi(pause); err == nil && val >= 0 {
			cfg.LevelPause = time.Duration(val) * time.Millisecond
		}
	}

	// One-based level to start from
	if level := os.Getenv("TERM_INVADERS_START_LEVEL"); level != "" {
		if val, err := strconv.Atoi(level); err == nil {
			cfg.StartLevel = val - 1
		}
	}

	cfg.normalize()
	return cfg
}

// normalize clamps values that would leave the round unplayable
func (c *RoundConfig) normalize() {
	if c.StartLevel < 0 {
		c.StartLevel = 0
	}
	if c.StartLevel >= pattern.LevelCount() {
		c.StartLevel = pattern.LevelCount() - 1
	}
	if c.Lives <= 0 {
		c.Lives = constants.StartingLives
	}
	if c.Width <= 0 {
		c.Width = constants.ScreenWidth
	}
	if c.Height <= 0 {
		c.Height = constants.ScreenHeight
	}
	if c.BonusSpawnMax < c.BonusSpawnMin {
		c.BonusSpawnMax = c.BonusSpawnMin
	}
}
