package systems

import (
	"log/slog"
	"sort"
	"time"

	"github.com/lixenwraith/term-invaders/engine"
	"github.com/lixenwraith/term-invaders/events"
	"github.com/lixenwraith/term-invaders/pattern"
	"github.com/lixenwraith/term-invaders/ranking"
)

// RoundSystem drives one round: it runs the frame pipeline while playing,
// applies phase transitions and writes the ranking exactly once at the end
type RoundSystem struct {
	round   *engine.Round
	clock   *engine.PausableClock
	store   ranking.Store
	logger  *slog.Logger
	systems []engine.System

	levelCount int
	recorded   bool
}

// NewRoundSystem wires the standard pipeline around round
// store may be nil, in which case nothing is persisted
func NewRoundSystem(round *engine.Round, clock *engine.PausableClock, store ranking.Store, logger *slog.Logger) *RoundSystem {
	if logger == nil {
		logger = slog.Default()
	}
	w, h := round.Config.Width, round.Config.Height

	rs := &RoundSystem{
		round:      round,
		clock:      clock,
		store:      store,
		logger:     logger.With("component", "round", "mode", round.Mode.String()),
		levelCount: pattern.LevelCount(),
	}
	rs.AddSystem(NewShipSystem(w))
	rs.AddSystem(NewSwarmSystem(w))
	rs.AddSystem(NewAlienFireSystem())
	rs.AddSystem(NewBonusSystem(w))
	rs.AddSystem(NewProjectileSystem(h))
	rs.AddSystem(NewExplosionSystem())
	rs.AddSystem(NewCombatSystem())
	return rs
}

// AddSystem inserts a system keeping priority order
func (rs *RoundSystem) AddSystem(s engine.System) {
	rs.systems = append(rs.systems, s)
	sort.SliceStable(rs.systems, func(i, j int) bool {
		return rs.systems[i].Priority() < rs.systems[j].Priority()
	})
}

// Round returns the driven round
func (rs *RoundSystem) Round() *engine.Round {
	return rs.round
}

// Begin starts play with the entered names
func (rs *RoundSystem) Begin(names []string) error {
	now := rs.clock.Now()
	rs.round.Events.BeginFrame(rs.round.Frame, now)
	if err := rs.round.Begin(names, now); err != nil {
		return err
	}
	rs.logger.Info("round started", "names", names, "level", rs.round.Level+1)
	return nil
}

// TogglePause pauses or resumes game time; ignored outside active play
func (rs *RoundSystem) TogglePause() bool {
	if rs.round.Phase == engine.PhaseAwaitingName || rs.round.Phase.Terminal() {
		return rs.clock.IsPaused()
	}
	paused := rs.clock.Toggle()
	rs.round.Events.Emit(events.EventPauseToggled, &events.PausePayload{Paused: paused})
	return paused
}

// Paused reports whether game time is frozen
func (rs *RoundSystem) Paused() bool {
	return rs.clock.IsPaused()
}

// Update runs one frame with the given per-player input
// Returns the result once the round reached a terminal phase, nil otherwise
func (rs *RoundSystem) Update(inputs []engine.InputState) *engine.RoundResult {
	r := rs.round
	if r.Phase.Terminal() {
		return r.Result()
	}
	if r.Phase == engine.PhaseAwaitingName || rs.clock.IsPaused() {
		return nil
	}

	now := rs.clock.Now()
	r.Frame++
	r.Events.BeginFrame(r.Frame, now)
	r.Input = inputs

	switch r.Phase {
	case engine.PhaseLevelCleared:
		// Frozen until the inter-level pause elapses
		if r.PhaseDuration(now) < r.Config.LevelPause {
			return nil
		}
		r.Transition(engine.PhasePlaying, now)
	case engine.PhaseShipLost:
		r.Transition(engine.PhasePlaying, now)
	}

	alive := len(r.LiveShips())
	for _, s := range rs.systems {
		s.Update(r, now)
	}
	rs.checkTransitions(alive, now)

	if r.Phase.Terminal() {
		return rs.finish()
	}
	return nil
}

// checkTransitions applies end-of-frame phase changes
// aliveBefore is the live ship count at the start of the frame
func (rs *RoundSystem) checkTransitions(aliveBefore int, now time.Time) {
	r := rs.round
	alive := len(r.LiveShips())

	if alive == 0 {
		r.Transition(engine.PhaseGameOver, now)
		r.Events.Emit(events.EventGameOver, &events.RoundEndPayload{Level: r.Level, Total: r.TotalScore()})
		return
	}

	if len(r.Aliens) == 0 {
		next := r.Level + 1
		r.Events.Emit(events.EventLevelCleared, &events.LevelPayload{Level: r.Level})
		if next >= rs.levelCount {
			r.Transition(engine.PhaseVictory, now)
			r.Events.Emit(events.EventVictory, &events.RoundEndPayload{Level: r.Level, Total: r.TotalScore()})
			return
		}
		r.LoadLevel(next, now)
		if r.Config.LevelPause > 0 {
			r.Transition(engine.PhaseLevelCleared, now)
		}
		rs.logger.Debug("level cleared", "next", next+1, "total", r.TotalScore())
		return
	}

	if alive < aliveBefore {
		r.Transition(engine.PhaseShipLost, now)
		rs.logger.Debug("ship lost", "survivors", alive)
	}
}

// finish records the result and writes the ranking once
func (rs *RoundSystem) finish() *engine.RoundResult {
	res := rs.round.Finish(false)
	if rs.recorded {
		return res
	}
	rs.recorded = true

	rs.logger.Info("round ended", "outcome", res.Outcome.String(), "name", res.Name, "total", res.Total, "level", res.Level+1)
	if rs.store == nil {
		return res
	}
	if err := rs.store.Save(res.Mode, res.Name, res.Total); err != nil {
		rs.logger.Error("ranking write failed", "error", err)
	}
	return res
}

// Abandon ends the round early without touching the ranking
func (rs *RoundSystem) Abandon() *engine.RoundResult {
	if rs.round.Phase.Terminal() {
		return rs.finish()
	}
	rs.recorded = true
	res := rs.round.Finish(true)
	rs.logger.Info("round abandoned", "total", res.Total, "level", res.Level+1)
	return res
}

// Snapshot returns the presentation view of the current frame
func (rs *RoundSystem) Snapshot() engine.Snapshot {
	return rs.round.Snapshot(rs.clock.Now(), rs.levelCount, rs.clock.IsPaused())
}
