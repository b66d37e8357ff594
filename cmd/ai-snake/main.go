package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ai-snake/audio"
	"github.com/lixenwraith/ai-snake/constants"
	"github.com/lixenwraith/ai-snake/core"
	"github.com/lixenwraith/ai-snake/engine"
	"github.com/lixenwraith/ai-snake/events"
	"github.com/lixenwraith/ai-snake/input"
	"github.com/lixenwraith/ai-snake/render"
	"github.com/lixenwraith/ai-snake/session"
	"github.com/lixenwraith/ai-snake/status"
	"github.com/sirupsen/logrus"
)

func main() {
	opts, err := parseOptions(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "ai-snake: %v\n", err)
		os.Exit(2)
	}

	logFile := setupLogging(opts.debug)

	err = run(opts)
	if err != nil {
		logrus.WithError(err).Error("exiting")
	}
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ai-snake: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashCleanup(screen.Fini)

	log := logrus.StandardLogger()
	reg := status.NewRegistry()

	router := events.NewRouter()
	router.SetPanicHandler(func(ev events.GameEvent, r any) {
		log.WithFields(logrus.Fields{"event": ev.Type.String(), "panic": r}).Error("event handler panicked")
	})

	cfg := opts.engineConfig()
	cfg.Router = router
	eng := engine.NewEngine(cfg)

	tracker := session.NewTracker(log, reg, eng.State().Difficulty)
	router.Register(tracker)

	// Audio is optional, the game runs silently without a device
	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
	} else {
		defer sound.Cleanup()
	}
	sound.SetMuted(opts.mute)
	router.Register(sound)

	scheduler, tickDone := engine.NewClockScheduler(eng, eng.Settings().TickInterval, reg)
	router.Register(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	renderer := render.NewTerminalRenderer(screen, eng.Grid().Size, reg)

	handler := input.NewHandler(eng, scheduler, sound, renderer)
	handler.OnIntent = func(i input.Intent) {
		log.WithField("intent", i.Type.String()).Debug("input")
	}

	log.WithFields(logrus.Fields{
		"difficulty":  opts.difficulty.String(),
		"seed":        opts.seed,
		"avoid_snake": opts.avoidSnake,
		"no_reverse":  opts.noReverse,
	}).Info("ai-snake started")

	eventChan := make(chan tcell.Event, constants.InputQueueSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			eventChan <- ev
		}
	})

	attempts := reg.Ints.Get("food.attempts")
	draw := func() {
		attempts.Store(int64(eng.SpawnAttempts()))
		renderer.RenderFrame(render.Frame{
			State:  eng.State(),
			Best:   tracker.Best(),
			Paused: scheduler.IsPaused(),
			Muted:  sound.IsMuted(),
		})
	}
	draw()

	// Main game loop
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	dirty := false
	for {
		select {
		case ev := <-eventChan:
			if !handler.HandleEvent(ev) {
				log.WithField("best", tracker.Best()).Info("ai-snake quit")
				return nil
			}
			dirty = true

		case <-tickDone:
			dirty = true

		case <-frameTicker.C:
			if dirty {
				draw()
				dirty = false
			}
		}
	}
}
