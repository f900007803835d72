// @focus: #core { types } #game { swarm }
package components

import (
	"time"

	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
)

// AlienType tags the three alien variants
// Per-type data lives in a lookup table instead of per-type branching
type AlienType uint8

const (
	AlienLow AlienType = iota
	AlienMid
	AlienHigh
	alienTypeCount
)

// alienTypeInfo is the per-type lookup entry
type alienTypeInfo struct {
	Kind   byte   // Level pattern character
	Points int    // Score awarded on kill
	Frames int    // Animation frame count
	Name   string // Debug and log label
}

var alienTypes = [alienTypeCount]alienTypeInfo{
	AlienLow:  {Kind: '1', Points: constants.PointsLow, Frames: constants.AlienFrameCount, Name: "low"},
	AlienMid:  {Kind: '2', Points: constants.PointsMid, Frames: constants.AlienFrameCount, Name: "mid"},
	AlienHigh: {Kind: '3', Points: constants.PointsHigh, Frames: constants.AlienFrameCount, Name: "high"},
}

// AlienTypeFromKind maps a level pattern character to its alien type
func AlienTypeFromKind(kind byte) (AlienType, bool) {
	for t := AlienLow; t < alienTypeCount; t++ {
		if alienTypes[t].Kind == kind {
			return t, true
		}
	}
	return 0, false
}

// Points returns the score awarded for destroying an alien of this type
func (t AlienType) Points() int {
	if t >= alienTypeCount {
		return 0
	}
	return alienTypes[t].Points
}

// Frames returns the number of animation frames for this type
func (t AlienType) Frames() int {
	if t >= alienTypeCount {
		return 1
	}
	return alienTypes[t].Frames
}

// Kind returns the level pattern character for this type
func (t AlienType) Kind() byte {
	if t >= alienTypeCount {
		return ' '
	}
	return alienTypes[t].Kind
}

func (t AlienType) String() string {
	if t >= alienTypeCount {
		return "unknown"
	}
	return alienTypes[t].Name
}

// AlienComponent is one member of the swarm
type AlienComponent struct {
	Type       AlienType
	Bounds     core.Rect
	Frame      int       // Current animation frame index
	LastToggle time.Time // Spawn time, then time of the last frame toggle
	Alive      bool
}

// NewAlien creates a live alien at the given top-left corner
func NewAlien(t AlienType, x, y int, now time.Time) *AlienComponent {
	return &AlienComponent{
		Type: t,
		Bounds: core.Rect{
			X:      x,
			Y:      y,
			Width:  constants.AlienWidth,
			Height: constants.AlienHeight,
		},
		LastToggle: now,
		Alive:      true,
	}
}
