package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/term-invaders/components"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
	"github.com/lixenwraith/term-invaders/events"
	"github.com/lixenwraith/term-invaders/pattern"
)

func newTestRound(t *testing.T, mode core.PlayMode, names ...string) *Round {
	t.Helper()
	cfg := DefaultRoundConfig(mode)
	cfg.Seed = 1
	r := NewRound(cfg)
	if err := r.Begin(names, testEpoch); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	return r
}

func TestRound_BeginSingle(t *testing.T) {
	r := newTestRound(t, core.ModeSingle, "AAA")

	if r.Phase != PhasePlaying {
		t.Fatalf("Expected Playing, got %s", r.Phase)
	}
	if len(r.Ships) != 1 {
		t.Fatalf("Expected 1 ship, got %d", len(r.Ships))
	}
	ship := r.Ships[0]
	cx, _ := ship.Bounds.Center()
	if cx != constants.ShipSingleX || ship.Bounds.Bottom() != constants.ShipBaseline {
		t.Errorf("Ship misplaced: %+v", ship.Bounds)
	}
	if ship.Lives != constants.StartingLives || !ship.Alive || !ship.ReadyToFire {
		t.Errorf("Unexpected ship state: %+v", ship)
	}

	if got, want := len(r.Blocks), constants.BarrierCount*len(pattern.Barrier().Cells); got != want {
		t.Errorf("Expected %d blocks, got %d", want, got)
	}
	if r.Blocks[0].Bounds.Y < constants.BarrierY {
		t.Errorf("Block above barrier line: %+v", r.Blocks[0].Bounds)
	}

	if r.BonusTimer.Next().IsZero() || r.FireTimer.Next().IsZero() {
		t.Error("Timers should be armed on begin")
	}
}

func TestRound_BeginMulti(t *testing.T) {
	r := newTestRound(t, core.ModeMulti, "P1", "P2")

	if len(r.Ships) != 2 {
		t.Fatalf("Expected 2 ships, got %d", len(r.Ships))
	}
	c1, _ := r.Ships[0].Bounds.Center()
	c2, _ := r.Ships[1].Bounds.Center()
	if c1 != constants.ShipMultiX1 || c2 != constants.ShipMultiX2 {
		t.Errorf("Ships at %d and %d", c1, c2)
	}
	if r.RankingName() != "P1 & P2" {
		t.Errorf("Unexpected ranking name %q", r.RankingName())
	}
}

func TestRound_BeginValidation(t *testing.T) {
	r := NewRound(DefaultRoundConfig(core.ModeMulti))
	if err := r.Begin([]string{"ONE"}, testEpoch); err == nil {
		t.Error("Expected error for missing second name")
	}
	if err := r.Begin([]string{"ONE", " "}, testEpoch); !errors.Is(err, ErrNameRequired) {
		t.Errorf("Expected ErrNameRequired, got %v", err)
	}
	if r.Phase != PhaseAwaitingName {
		t.Errorf("Failed begin must not leave AwaitingName, got %s", r.Phase)
	}

	if err := r.Begin([]string{"ONE", "TWO"}, testEpoch); err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	if err := r.Begin([]string{"ONE", "TWO"}, testEpoch); err == nil {
		t.Error("Begin twice should fail")
	}
}

func TestRound_LoadLevelMatchesPattern(t *testing.T) {
	r := newTestRound(t, core.ModeSingle, "AAA")

	for _, level := range []int{0, 1, pattern.LevelCount() - 1} {
		r.Direction = -1
		r.LoadLevel(level, testEpoch)

		want := pattern.Aliens(level)
		if len(r.Aliens) != len(want.Cells) {
			t.Fatalf("Level %d: expected %d aliens, got %d", level, len(want.Cells), len(r.Aliens))
		}
		for i, cell := range want.Cells {
			a := r.Aliens[i]
			x := constants.AlienOriginX + cell.OffsetX*constants.AlienSpacingX
			y := constants.AlienOriginY + cell.OffsetY*constants.AlienSpacingY
			if a.Bounds.X != x || a.Bounds.Y != y || a.Type.Kind() != cell.Kind {
				t.Errorf("Level %d alien %d: got %+v kind %c, want (%d,%d) kind %c",
					level, i, a.Bounds, a.Type.Kind(), x, y, cell.Kind)
			}
		}
		if r.Direction != 1 || r.Level != level {
			t.Errorf("Level %d: direction %d, level %d", level, r.Direction, r.Level)
		}
	}
}

func TestRound_LoadLevelEmitsEvent(t *testing.T) {
	r := newTestRound(t, core.ModeSingle, "AAA")

	evs := r.Events.Consume()
	if len(evs) == 0 || evs[len(evs)-1].Type != events.EventLevelStarted {
		t.Fatalf("Expected LevelStarted event, got %v", evs)
	}
}

func TestRound_FinishOnce(t *testing.T) {
	r := newTestRound(t, core.ModeMulti, "A", "B")
	r.Ships[0].Score = 120
	r.Ships[1].Score = 30
	r.Transition(PhaseGameOver, testEpoch)

	res := r.Finish(false)
	if res.Total != 150 || res.Name != "A & B" || !res.Ranked() {
		t.Errorf("Unexpected result %+v", res)
	}
	r.Ships[0].Score = 999
	if again := r.Finish(false); again != res || again.Total != 150 {
		t.Error("Finish must return the first recorded result")
	}
	if r.Result() != res {
		t.Error("Result should expose the recorded outcome")
	}
}

func TestRound_AbandonedNotRanked(t *testing.T) {
	r := newTestRound(t, core.ModeSingle, "AAA")
	if r.Finish(true).Ranked() {
		t.Error("Abandoned round must not be ranked")
	}
}

func TestCompact(t *testing.T) {
	lasers := []*components.LaserComponent{
		components.NewAlienLaser(0, 0),
		components.NewAlienLaser(10, 0),
		components.NewAlienLaser(20, 0),
	}
	lasers[1].Alive = false

	got := Compact(lasers, func(l *components.LaserComponent) bool { return l.Alive })
	if len(got) != 2 {
		t.Fatalf("Expected 2 survivors, got %d", len(got))
	}
	if c0, _ := got[0].Bounds.Center(); c0 != 0 {
		t.Error("Order not preserved")
	}
	if c1, _ := got[1].Bounds.Center(); c1 != 20 {
		t.Error("Order not preserved")
	}
}

func TestRound_Snapshot(t *testing.T) {
	r := newTestRound(t, core.ModeSingle, "AAA")
	r.Ships[0].Lasers = append(r.Ships[0].Lasers, components.NewPlayerLaser(0, 100, 100))
	r.Explosions = append(r.Explosions, components.NewExplosion(components.AlienMid, 50, 50, testEpoch))
	r.Aliens[0].Alive = false

	now := testEpoch.Add(100 * time.Millisecond)
	s := r.Snapshot(now, pattern.LevelCount(), false)

	if len(s.Aliens) != len(r.Aliens)-1 {
		t.Errorf("Dead alien leaked into snapshot")
	}
	if len(s.Lasers) != 1 || s.Lasers[0].Source != components.SourcePlayer {
		t.Errorf("Expected one player laser, got %+v", s.Lasers)
	}
	if len(s.Explosions) != 1 || s.Explosions[0].Age != 100*time.Millisecond {
		t.Errorf("Unexpected explosions %+v", s.Explosions)
	}

	s.Ships[0].Score = 500
	if r.Ships[0].Score != 0 {
		t.Error("Snapshot must not alias round state")
	}
}

func TestLoadRoundConfig_Env(t *testing.T) {
	t.Setenv("TERM_INVADERS_LEVEL_PAUSE_MS", "250")
	t.Setenv("TERM_INVADERS_START_LEVEL", "3")

	cfg := LoadRoundConfig(core.ModeSingle)
	if cfg.LevelPause != 250*time.Millisecond {
		t.Errorf("Expected 250ms level pause, got %v", cfg.LevelPause)
	}
	if cfg.StartLevel != 2 {
		t.Errorf("Expected start level index 2, got %d", cfg.StartLevel)
	}

	t.Setenv("TERM_INVADERS_START_LEVEL", "999")
	cfg = LoadRoundConfig(core.ModeSingle)
	if cfg.StartLevel != pattern.LevelCount()-1 {
		t.Errorf("Start level should clamp to last pattern, got %d", cfg.StartLevel)
	}
}
