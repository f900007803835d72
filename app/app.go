package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-invaders/audio"
	"github.com/lixenwraith/term-invaders/constants"
	"github.com/lixenwraith/term-invaders/core"
	"github.com/lixenwraith/term-invaders/engine"
	"github.com/lixenwraith/term-invaders/events"
	"github.com/lixenwraith/term-invaders/modes"
	"github.com/lixenwraith/term-invaders/ranking"
	"github.com/lixenwraith/term-invaders/render"
	"github.com/lixenwraith/term-invaders/systems"
)

// Options configures an App; zero values select defaults
type Options struct {
	Store  ranking.Store       // nil keeps rankings in memory
	Audio  audio.Player        // nil runs silent
	Logger *slog.Logger        // nil uses slog.Default
	Time   engine.TimeProvider // nil uses the monotonic clock
	Seed   int64               // non-zero makes rounds reproducible

	// RoundConfig overrides engine.LoadRoundConfig when set
	RoundConfig func(core.PlayMode) engine.RoundConfig
}

// App owns the screen and walks Menu, NameEntry, Round and Results
type App struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	store    ranking.Store
	logger   *slog.Logger
	time     engine.TimeProvider
	router   *events.Router[time.Time]
	roundCfg func(core.PlayMode) engine.RoundConfig
	seed     int64

	state   AppState
	started time.Time

	// Menu
	menu     *modes.Menu
	stars    *render.Starfield
	rankings [2][]ranking.Entry

	// NameEntry
	mode   core.PlayMode
	prompt *modes.TextPrompt
	names  []string

	// Round
	round  *systems.RoundSystem
	input  *modes.InputHandler
	rounds int

	// Results
	result    *engine.RoundResult
	resultsAt time.Time
}

// New creates an App on an initialized screen, starting at the menu
func New(screen tcell.Screen, opts Options) *App {
	if opts.Store == nil {
		opts.Store = ranking.NewMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Time == nil {
		opts.Time = engine.NewMonotonicTimeProvider()
	}
	if opts.RoundConfig == nil {
		opts.RoundConfig = engine.LoadRoundConfig
	}

	a := &App{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		store:    opts.Store,
		logger:   opts.Logger.With("component", "app"),
		time:     opts.Time,
		router:   events.NewRouter[time.Time](),
		roundCfg: opts.RoundConfig,
		seed:     opts.Seed,
		menu:     modes.NewMenu(),
		prompt:   modes.NewTextPrompt(""),
		stars:    render.NewStarfield(constants.ScreenWidth, constants.ScreenHeight, opts.Seed),
	}
	if opts.Audio != nil {
		a.router.Register(audio.NewEventHandler(opts.Audio))
	}
	a.router.Register(newEventLogger(opts.Logger))

	a.started = a.time.Now()
	a.enterMenu()
	return a
}

// State returns the current screen
func (a *App) State() AppState {
	return a.state
}

// Round returns the active round driver, nil outside StateRound and StateResults
func (a *App) Round() *systems.RoundSystem {
	return a.round
}

// Result returns the result shown on the results screen
func (a *App) Result() *engine.RoundResult {
	return a.result
}

func (a *App) transition(to AppState) {
	if !CanTransition(a.state, to) && a.state != to {
		a.logger.Warn("invalid screen transition", "from", a.state.String(), "to", to.String())
		return
	}
	a.logger.Debug("screen", "from", a.state.String(), "to", to.String())
	a.state = to
}

func (a *App) enterMenu() {
	a.rankings[core.ModeSingle] = a.store.Load(core.ModeSingle)
	a.rankings[core.ModeMulti] = a.store.Load(core.ModeMulti)
	a.round = nil
	a.input = nil
	a.result = nil
	a.transition(StateMenu)
}

func (a *App) enterNameEntry(mode core.PlayMode) {
	a.mode = mode
	a.names = a.names[:0]
	a.prompt.Reset(promptLabel(mode, 0))
	a.transition(StateNameEntry)
}

func promptLabel(mode core.PlayMode, player int) string {
	if mode == core.ModeSingle {
		return "Enter your name"
	}
	return fmt.Sprintf("Player %d, enter your name", player+1)
}

func promptTitle(mode core.PlayMode) string {
	if mode == core.ModeSingle {
		return "SINGLE PLAYER"
	}
	return "MULTIPLAYER"
}

func (a *App) enterRound() {
	cfg := a.roundCfg(a.mode)
	if a.seed != 0 {
		cfg.Seed = a.seed + int64(a.rounds)
	}
	a.rounds++

	clock := engine.NewPausableClock(a.time)
	rs := systems.NewRoundSystem(engine.NewRound(cfg), clock, a.store, a.logger)
	names := append([]string(nil), a.names...)
	if err := rs.Begin(names); err != nil {
		// Names are validated by the prompt; reaching here is a bug in the caller
		a.logger.Error("round start failed", "error", err)
		a.enterMenu()
		return
	}

	a.round = rs
	a.input = modes.NewInputHandler(modes.BindingsFor(a.mode), a.mode.Players())
	a.transition(StateRound)
}

func (a *App) enterResults(res *engine.RoundResult, now time.Time) {
	a.result = res
	a.resultsAt = now
	a.transition(StateResults)
}

// HandleEvent applies one terminal event; returns false when the app should exit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.renderer.UpdateDimensions(w, h)
		a.screen.Sync()
	case *tcell.EventKey:
		a.handleKey(ev, a.time.Now())
	}
	return a.state != StateQuit
}

func (a *App) handleKey(ev *tcell.EventKey, now time.Time) {
	switch a.state {
	case StateMenu:
		item, ok := a.menu.HandleKey(ev)
		if !ok {
			return
		}
		switch item {
		case modes.MenuSingle:
			a.enterNameEntry(core.ModeSingle)
		case modes.MenuMulti:
			a.enterNameEntry(core.ModeMulti)
		case modes.MenuExit:
			a.transition(StateQuit)
		}

	case StateNameEntry:
		switch a.prompt.HandleKey(ev) {
		case modes.PromptAccepted:
			a.names = append(a.names, a.prompt.Text())
			if len(a.names) < a.mode.Players() {
				a.prompt.Reset(promptLabel(a.mode, len(a.names)))
				return
			}
			a.enterRound()
		case modes.PromptCancelled:
			a.enterMenu()
		case modes.PromptQuit:
			a.transition(StateQuit)
		}

	case StateRound:
		switch a.input.HandleKey(ev, now) {
		case modes.ActionPause:
			a.round.TogglePause()
		case modes.ActionAbandon:
			a.round.Abandon()
			a.enterMenu()
		case modes.ActionQuit:
			a.round.Abandon()
			a.transition(StateQuit)
		}

	case StateResults:
		if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyCtrlQ {
			a.transition(StateQuit)
			return
		}
		a.enterMenu()
	}
}

// Tick advances the active screen by one frame
func (a *App) Tick(now time.Time) {
	switch a.state {
	case StateMenu:
		a.stars.Update()

	case StateRound:
		res := a.round.Update(a.input.States(now))
		a.router.DispatchAll(now, a.round.Round().Events)
		if res != nil {
			a.enterResults(res, now)
		}

	case StateResults:
		if now.Sub(a.resultsAt) >= constants.ResultsDisplayDuration {
			a.enterMenu()
		}
	}
}

// Draw renders the active screen
func (a *App) Draw(now time.Time) {
	switch a.state {
	case StateMenu:
		a.renderer.RenderMenu(render.MenuView{
			Selected: a.menu.Selected,
			Single:   a.rankings[core.ModeSingle],
			Multi:    a.rankings[core.ModeMulti],
			Stars:    a.stars,
			Elapsed:  now.Sub(a.started),
		})
	case StateNameEntry:
		a.renderer.RenderPrompt(render.PromptView{
			Title: promptTitle(a.mode),
			Label: a.prompt.Label,
			Text:  a.prompt.Text(),
			Caret: now.Sub(a.started)/constants.CaretBlinkInterval%2 == 0,
		})
	case StateRound:
		a.renderer.RenderRound(a.round.Snapshot())
	case StateResults:
		a.renderer.RenderResults(render.ResultView{
			Result:    a.result,
			Remaining: constants.ResultsDisplayDuration - now.Sub(a.resultsAt),
		})
	}
}

// Run owns the frame loop until the user quits, the terminal closes or ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	evCh := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(evCh)
				return
			}
			select {
			case evCh <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	a.Draw(a.time.Now())
	for {
		select {
		case <-ctx.Done():
			a.shutdown()
			return nil
		case ev, ok := <-evCh:
			if !ok {
				a.shutdown()
				return nil
			}
			if !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			now := a.time.Now()
			a.Tick(now)
			if a.state == StateQuit {
				return nil
			}
			a.Draw(now)
		}
	}
}

// shutdown abandons an unfinished round so nothing is half-written
func (a *App) shutdown() {
	if a.state == StateRound {
		a.round.Abandon()
	}
	a.state = StateQuit
}
