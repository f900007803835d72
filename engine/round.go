package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/lixenwraith/term-invaders/components"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
	"github.com/lixenwraith/term-invaders/events"
	"github.com/lixenwraith/term-invaders/pattern"
)

// ErrNameRequired is returned by Begin when a player name is empty
var ErrNameRequired = errors.New("player name required")

// Round owns every entity of one play session from name entry to game over
// All collections are mutated only inside the update pass
type Round struct {
	Config RoundConfig
	Mode   core.PlayMode

	// Phase machine
	Phase      RoundPhase
	PhaseStart time.Time

	// Level progression, zero-based index into the pattern catalog
	Level int

	Ships []*components.ShipComponent
	Input []InputState // Per-player controls for the current frame

	// Swarm: all aliens share one direction (+1 right, -1 left) and step
	Aliens    []*components.AlienComponent
	Direction int
	Step      int

	AlienLasers []*components.LaserComponent
	Blocks      []*components.BlockComponent
	Bonuses     []*components.BonusComponent
	Explosions  []*components.ExplosionComponent

	// Scheduled state, checked each tick
	BonusTimer *Timer
	FireTimer  *Timer

	Events *events.EventQueue
	Frame  int64
	Rng    *rand.Rand

	result *RoundResult
}

// NewRound creates a round waiting for player names
func NewRound(cfg RoundConfig) *Round {
	cfg.normalize()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	return &Round{
		Config:     cfg,
		Mode:       cfg.Mode,
		Phase:      PhaseAwaitingName,
		Level:      cfg.StartLevel,
		Direction:  1,
		Step:       constants.SwarmStep,
		BonusTimer: NewRandomTimer(rng, cfg.BonusSpawnMin, cfg.BonusSpawnMax),
		FireTimer:  NewFixedTimer(cfg.AlienFireInterval),
		Events:     events.NewEventQueue(),
		Rng:        rng,
	}
}

// Begin places ships, barriers and the first swarm, then starts play
// names must hold one non-empty name per player of the mode
func (r *Round) Begin(names []string, now time.Time) error {
	if r.Phase != PhaseAwaitingName {
		return fmt.Errorf("begin round: phase is %s", r.Phase)
	}
	if len(names) != r.Mode.Players() {
		return fmt.Errorf("begin round: %s mode needs %d names, got %d", r.Mode, r.Mode.Players(), len(names))
	}
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("begin round: player %d: %w", i+1, ErrNameRequired)
		}
	}

	r.Ships = r.Ships[:0]
	for i, name := range names {
		ship := components.NewShip(i, name, shipStartX(r.Mode, i, r.Config.Width))
		ship.Lives = r.Config.Lives
		r.Ships = append(r.Ships, ship)
	}

	r.buildBarriers()
	r.Transition(PhasePlaying, now)
	r.LoadLevel(r.Level, now)
	r.BonusTimer.Arm(now)
	r.FireTimer.Arm(now)
	return nil
}

// shipStartX returns the horizontal center of a player's starting position
func shipStartX(mode core.PlayMode, player, width int) int {
	if mode == core.ModeSingle {
		return width * constants.ShipSingleX / constants.ScreenWidth
	}
	if player == 0 {
		return width * constants.ShipMultiX1 / constants.ScreenWidth
	}
	return width * constants.ShipMultiX2 / constants.ScreenWidth
}

// LoadLevel replaces the swarm with level idx and resets its direction
// Lasers, barriers and bonus ships carry over between levels
func (r *Round) LoadLevel(idx int, now time.Time) {
	placement := pattern.Aliens(idx)

	r.Level = idx
	r.Direction = 1
	r.Aliens = r.Aliens[:0]
	for _, cell := range placement.Cells {
		t, ok := components.AlienTypeFromKind(cell.Kind)
		if !ok {
			continue
		}
		x := constants.AlienOriginX + cell.OffsetX*constants.AlienSpacingX
		y := constants.AlienOriginY + cell.OffsetY*constants.AlienSpacingY
		r.Aliens = append(r.Aliens, components.NewAlien(t, x, y, now))
	}

	r.Events.Emit(events.EventLevelStarted, &events.LevelPayload{Level: idx})
}

func (r *Round) buildBarriers() {
	shape := pattern.Barrier()
	r.Blocks = r.Blocks[:0]
	for i := 0; i < constants.BarrierCount; i++ {
		ox := constants.BarrierOriginX + i*constants.BarrierSpacing
		for _, cell := range shape.Cells {
			r.Blocks = append(r.Blocks, components.NewBlock(
				ox+cell.OffsetX*constants.BlockSize,
				constants.BarrierY+cell.OffsetY*constants.BlockSize,
			))
		}
	}
}

// Transition moves to phase to when the phase machine allows it
func (r *Round) Transition(to RoundPhase, now time.Time) bool {
	if !CanTransition(r.Phase, to) {
		return false
	}
	r.Phase = to
	r.PhaseStart = now
	return true
}

// PhaseDuration returns how long the current phase has been active
func (r *Round) PhaseDuration(now time.Time) time.Duration {
	return now.Sub(r.PhaseStart)
}

// LiveShips returns the ships still in play
func (r *Round) LiveShips() []*components.ShipComponent {
	live := make([]*components.ShipComponent, 0, len(r.Ships))
	for _, s := range r.Ships {
		if s.Alive {
			live = append(live, s)
		}
	}
	return live
}

// TotalScore sums the scores of all ships
func (r *Round) TotalScore() int {
	total := 0
	for _, s := range r.Ships {
		total += s.Score
	}
	return total
}

// RankingName is the name recorded in the ranking: the single player's name,
// or all names joined in multiplayer
func (r *Round) RankingName() string {
	names := make([]string, 0, len(r.Ships))
	for _, s := range r.Ships {
		names = append(names, s.Name)
	}
	return strings.Join(names, " & ")
}

// Finish records the outcome once the round is in a terminal phase
// Subsequent calls return the same result
func (r *Round) Finish(abandoned bool) *RoundResult {
	if r.result != nil {
		return r.result
	}
	res := &RoundResult{
		Mode:      r.Mode,
		Outcome:   r.Phase,
		Name:      r.RankingName(),
		Total:     r.TotalScore(),
		Level:     r.Level,
		Abandoned: abandoned,
	}
	for _, s := range r.Ships {
		res.Players = append(res.Players, PlayerScore{Name: s.Name, Score: s.Score, Lives: s.Lives})
	}
	r.result = res
	return res
}

// Result returns the recorded outcome, nil while the round is running
func (r *Round) Result() *RoundResult {
	return r.result
}

// InputFor returns the controls of player i for the current frame
func (r *Round) InputFor(i int) InputState {
	if i < 0 || i >= len(r.Input) {
		return InputState{}
	}
	return r.Input[i]
}

// Compact removes entries for which alive reports false, preserving order
func Compact[T any](items []*T, alive func(*T) bool) []*T {
	n := 0
	for _, it := range items {
		if alive(it) {
			items[n] = it
			n++
		}
	}
	for i := n; i < len(items); i++ {
		items[i] = nil
	}
	return items[:n]
}
