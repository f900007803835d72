package engine

import "testing"

func TestCanTransition(t *testing.T) {
	valid := []struct{ from, to RoundPhase }{
		{PhaseAwaitingName, PhasePlaying},
		{PhasePlaying, PhaseLevelCleared},
		{PhasePlaying, PhaseShipLost},
		{PhasePlaying, PhaseGameOver},
		{PhasePlaying, PhaseVictory},
		{PhaseLevelCleared, PhasePlaying},
		{PhaseLevelCleared, PhaseVictory},
		{PhaseShipLost, PhasePlaying},
		{PhaseShipLost, PhaseGameOver},
	}
	for _, tc := range valid {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("Expected %s -> %s to be valid", tc.from, tc.to)
		}
	}

	invalid := []struct{ from, to RoundPhase }{
		{PhaseAwaitingName, PhaseGameOver},
		{PhaseGameOver, PhasePlaying},
		{PhaseVictory, PhasePlaying},
		{PhaseVictory, PhaseGameOver},
		{PhaseShipLost, PhaseLevelCleared},
		{PhasePlaying, PhaseAwaitingName},
	}
	for _, tc := range invalid {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("Expected %s -> %s to be invalid", tc.from, tc.to)
		}
	}
}

func TestRoundPhase_Terminal(t *testing.T) {
	for p := PhaseAwaitingName; p <= PhaseVictory; p++ {
		want := p == PhaseGameOver || p == PhaseVictory
		if p.Terminal() != want {
			t.Errorf("%s.Terminal() = %v, want %v", p, p.Terminal(), want)
		}
	}
	if RoundPhase(99).String() != "Unknown" {
		t.Error("Expected Unknown for invalid phase")
	}
}
