// @focus: #constants { entities }
package constants

import "time"

// --- Ship ---
const (
	ShipWidth  = 52
	ShipHeight = 32

	// ShipSpeed is the horizontal distance moved per frame while a direction is held
	ShipSpeed = 5

	// ShipBaseline is the y coordinate of every ship's bottom edge
	ShipBaseline = 580

	// ShipSingleX is the starting center of the only ship in single-player
	ShipSingleX = 400

	// ShipMultiX1 and ShipMultiX2 are the starting centers of the two local ships
	ShipMultiX1 = 200
	ShipMultiX2 = 600

	// LaserCooldown is the minimum time between two shots of the same ship
	LaserCooldown = 600 * time.Millisecond
)

// --- Laser ---
const (
	LaserWidth  = 4
	LaserHeight = 16

	// PlayerLaserSpeed is negative: player shots travel upward
	PlayerLaserSpeed = -8

	// AlienLaserSpeed is positive: alien shots travel downward
	AlienLaserSpeed = 6

	// LaserCullMargin is how far past the vertical bounds a laser survives
	LaserCullMargin = 50
)

// --- Alien Swarm ---
const (
	AlienWidth  = 40
	AlienHeight = 32

	// AlienOriginX and AlienOriginY place pattern cell (0, 0)
	AlienOriginX = 100
	AlienOriginY = 100

	// AlienSpacingX and AlienSpacingY are the distances between pattern cells
	AlienSpacingX = 50
	AlienSpacingY = 45

	// SwarmStep is the horizontal distance the formation moves per frame
	SwarmStep = 1

	// SwarmDescent is the vertical drop applied once per edge bounce
	SwarmDescent = 10

	// AlienAnimationInterval is the per-alien frame toggle period
	AlienAnimationInterval = 500 * time.Millisecond

	// AlienFrameCount is the number of animation frames each alien type cycles through
	AlienFrameCount = 2
)

// --- Bonus Ship ---
const (
	BonusWidth  = 64
	BonusHeight = 28

	// BonusY is the fixed altitude of the bonus ship's top edge
	BonusY = 80

	// BonusSpeed is the horizontal speed magnitude
	BonusSpeed = 3

	// BonusEntryOffset is how far outside the screen the bonus ship spawns
	BonusEntryOffset = 50
)

// --- Explosion ---
const (
	ExplosionWidth  = 40
	ExplosionHeight = 32

	// ExplosionLifetime is how long an explosion marker lives after spawn
	ExplosionLifetime = 500 * time.Millisecond
)

// --- Barriers ---
const (
	// BlockSize is the edge length of one barrier cell
	BlockSize = 6

	// BarrierCount is the number of barriers placed in front of the ships
	BarrierCount = 4

	// BarrierOriginX is the left edge of the first barrier
	BarrierOriginX = 100

	// BarrierSpacing is the horizontal distance between barrier origins
	BarrierSpacing = 150

	// BarrierY is the top edge of every barrier
	BarrierY = 450
)
