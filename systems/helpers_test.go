package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/term-invaders/components"
	"github.com/lixenwraith/term-invaders/core"
	"github.com/lixenwraith/term-invaders/engine"
	"github.com/lixenwraith/term-invaders/events"
	"github.com/lixenwraith/term-invaders/ranking"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// roundFixture bundles a started round with its controllable clock
type roundFixture struct {
	mock  *engine.MockTimeProvider
	clock *engine.PausableClock
	store *ranking.MemoryStore
	rs    *RoundSystem
	round *engine.Round
}

func newFixture(t *testing.T, cfg engine.RoundConfig, names ...string) *roundFixture {
	t.Helper()
	if cfg.Seed == 0 {
		cfg.Seed = 7
	}
	mock := engine.NewMockTimeProvider(testEpoch)
	clock := engine.NewPausableClock(mock)
	store := ranking.NewMemoryStore()
	round := engine.NewRound(cfg)
	rs := NewRoundSystem(round, clock, store, nil)
	if err := rs.Begin(names); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	round.Events.Consume()
	return &roundFixture{mock: mock, clock: clock, store: store, rs: rs, round: round}
}

func newSingle(t *testing.T) *roundFixture {
	return newFixture(t, engine.DefaultRoundConfig(core.ModeSingle), "AAA")
}

func newMulti(t *testing.T) *roundFixture {
	return newFixture(t, engine.DefaultRoundConfig(core.ModeMulti), "P1", "P2")
}

// step advances the clock by one frame and updates the round
func (f *roundFixture) step(inputs ...engine.InputState) *engine.RoundResult {
	f.mock.Advance(16 * time.Millisecond)
	return f.rs.Update(inputs)
}

// countEvents returns how many events of type et are pending, consuming the queue
func countEvents(q *events.EventQueue, et events.EventType) int {
	n := 0
	for _, ev := range q.Consume() {
		if ev.Type == et {
			n++
		}
	}
	return n
}

// laserOnto returns an alien laser positioned over the center of box
func laserOnto(box core.Rect) *components.LaserComponent {
	cx, cy := box.Center()
	return components.NewAlienLaser(cx, cy)
}
