package engine

import "github.com/lixenwraith/term-invaders/core"

// PlayerScore is one player's final standing
type PlayerScore struct {
	Name  string
	Score int
	Lives int
}

// RoundResult is handed back to the application when a round ends
type RoundResult struct {
	Mode    core.PlayMode
	Outcome RoundPhase // PhaseGameOver or PhaseVictory; anything else when abandoned
	Name    string     // Ranking name
	Total   int        // Ranking score
	Level   int        // Zero-based level reached
	Players []PlayerScore

	Abandoned bool // Left before a terminal phase; not ranked
}

// Ranked reports whether the result belongs in the ranking
func (r *RoundResult) Ranked() bool {
	return !r.Abandoned && r.Outcome.Terminal()
}
