package components

import (
	"time"

	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
)

// ExplosionComponent marks where an alien died
// Type selects the decoration; the marker expires after a fixed lifetime
type ExplosionComponent struct {
	Type      AlienType
	Bounds    core.Rect
	SpawnTime time.Time
}

// NewExplosion creates an explosion centered on (cx, cy)
func NewExplosion(t AlienType, cx, cy int, now time.Time) *ExplosionComponent {
	return &ExplosionComponent{
		Type:      t,
		Bounds:    core.CenteredAt(cx, cy, constants.ExplosionWidth, constants.ExplosionHeight),
		SpawnTime: now,
	}
}

// Expired reports whether the lifetime has elapsed at now
func (e *ExplosionComponent) Expired(now time.Time) bool {
	return now.Sub(e.SpawnTime) > constants.ExplosionLifetime
}
