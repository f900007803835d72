package constants

// System priorities, lower runs first
// Frame order: input, swarm, transients, collisions
const (
	PriorityShip       = 10
	PrioritySwarm      = 20
	PriorityAlienFire  = 25
	PriorityBonus      = 30
	PriorityProjectile = 40
	PriorityExplosion  = 50
	PriorityCombat     = 60
)
