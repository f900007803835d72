package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term-invaders/app"
	"github.com/lixenwraith/term-invaders/audio"
	"github.com/lixenwraith/term-invaders/core"
	"github.com/lixenwraith/term-invaders/ranking"
)

var (
	debugFlag    = flag.Bool("debug", false, "Write JSON logs to the log file")
	logLevelFlag = flag.String("log-level", "debug", "Log level when -debug is set: debug, info, warn, error")
	logFileFlag  = flag.String("log-file", "", "Log file path (default: XDG state dir)")
	dataDirFlag  = flag.String("data-dir", "", "Ranking directory (default: XDG data dir)")
	muteFlag     = flag.Bool("mute", false, "Disable sound")
	seedFlag     = flag.Int64("seed", 0, "Random seed; 0 picks one from the clock")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "term-invaders: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, closer, err := setupLogging(*debugFlag, *logLevelFlag, *logFileFlag)
	if err != nil {
		return err
	}
	defer closer.Close()

	store, err := ranking.NewFileStore(*dataDirFlag, logger)
	if err != nil {
		return err
	}

	var player audio.Player
	cfg := audio.LoadAudioConfig()
	if *muteFlag {
		cfg.Enabled = false
	}
	sm := audio.NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		if !errors.Is(err, audio.ErrAudioDisabled) {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
	} else {
		player = sm
		defer sm.Cleanup()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashTerminal(screen)
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "ranking", store.Path(core.ModeSingle), "audio", player != nil, "seed", *seedFlag)
	a := app.New(screen, app.Options{
		Store:  store,
		Audio:  player,
		Logger: logger,
		Seed:   *seedFlag,
	})
	return a.Run(ctx)
}
