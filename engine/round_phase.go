package engine

// RoundPhase represents the current stage of a round
type RoundPhase int

const (
	// PhaseAwaitingName waits for the player names before any simulation
	PhaseAwaitingName RoundPhase = iota
	// PhasePlaying runs the per-frame simulation
	PhasePlaying
	// PhaseLevelCleared holds between levels with the next swarm already placed
	PhaseLevelCleared
	// PhaseShipLost is the transient after one ship of several dies
	PhaseShipLost
	// PhaseGameOver is terminal: every ship is dead
	PhaseGameOver
	// PhaseVictory is terminal: the last level was cleared
	PhaseVictory
)

var phaseNames = [...]string{
	PhaseAwaitingName: "AwaitingName",
	PhasePlaying:      "Playing",
	PhaseLevelCleared: "LevelCleared",
	PhaseShipLost:     "ShipLost",
	PhaseGameOver:     "GameOver",
	PhaseVictory:      "Victory",
}

func (p RoundPhase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "Unknown"
	}
	return phaseNames[p]
}

// Terminal reports whether the round has ended
func (p RoundPhase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory
}

var validTransitions = map[RoundPhase][]RoundPhase{
	PhaseAwaitingName: {PhasePlaying},
	PhasePlaying:      {PhaseLevelCleared, PhaseShipLost, PhaseGameOver, PhaseVictory},
	PhaseLevelCleared: {PhasePlaying, PhaseVictory},
	PhaseShipLost:     {PhasePlaying, PhaseGameOver},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to RoundPhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}
