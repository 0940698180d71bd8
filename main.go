package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"pong/internal/audio"
	"pong/internal/controller"
	"pong/internal/input"
	"pong/internal/loader/loader"
	"pong/internal/loader/schema"
	"pong/internal/logger"
	"pong/internal/platform"
	"pong/internal/replay"
)

func main() {
	configFile := flag.String("config", "pong.yaml", "path to the config file (optional)")
	seedFlag := flag.Uint64("seed", 0, "serve seed, overrides the config (0 keeps the config value)")
	recordFlag := flag.String("record", "", "write a replay of the session to this path")
	flag.Parse()

	boot, err := logger.NewLoggerWithComponent("bootstrap")
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	l := loader.NewLoader("yaml", *configFile)
	if err := l.Load(); err != nil {
		boot.Fatal("failed to load configuration", logger.Err(err), logger.F("path", *configFile))
	}
	cfg := l.GetConfig()
	applyFlags(&cfg, *seedFlag, *recordFlag)

	zl, err := logger.NewZapLogger(cfg.Log)
	if err != nil {
		boot.Fatal("failed to build logger from config", logger.Err(err))
	}
	_ = boot.Sync()
	log := logger.Component(zl, "main")
	defer func() { _ = zl.Sync() }()
	ctx := logger.WithLogger(context.Background(), zl)

	seed := sessionSeed(cfg.Seed, time.Now())
	sessionID := uuid.NewString()
	log.Info("starting pong",
		logger.F("config", l.Source()),
		logger.F("seed", seed),
		logger.F("session_id", sessionID),
	)

	bindings, err := input.NewBindings(cfg.Keys)
	if err != nil {
		log.Fatal("invalid key bindings", logger.Err(err))
	}

	var player audio.Player = audio.Silent{}
	if cfg.Audio.Enabled {
		player = audio.Load(func() (audio.Player, error) {
			s, err := platform.LoadWav(cfg.Audio.Bounce, cfg.Audio.Volume)
			if err != nil {
				return nil, err
			}
			return s, nil
		}, logger.Component(zl, "audio"))
	}
	sink, err := audio.NewSink(player, audio.Options{
		Workers:     cfg.Audio.Workers,
		MinInterval: cfg.Audio.MinInterval,
		Logger:      logger.Component(zl, "audio"),
	})
	if err != nil {
		log.Fatal("failed to start audio", logger.Err(err))
	}

	opts := controller.Options{
		Seed:      seed,
		SessionID: sessionID,
		Logger:    zl,
		Bouncer:   sink,
	}
	var recorder *replay.Recorder
	if cfg.Replay.Record != "" {
		recorder = replay.NewRecorder(sessionID, seed, time.Now().UnixMilli())
		opts.Recorder = recorder
	}

	ctrl := controller.New(opts)
	game := platform.NewGame(ctx, ctrl, bindings)

	runErr := platform.Run(game, cfg.Window.Title, cfg.Window.Scale)

	ctrl.Stop()
	if err := sink.Close(time.Second); err != nil {
		log.Warn("audio did not drain", logger.Err(err))
	}
	stats := sink.Stats()
	log.Info("audio stats",
		logger.F("played", stats.Played),
		logger.F("dropped", stats.Dropped),
		logger.F("failed", stats.Failed),
	)

	if recorder != nil {
		if err := replay.WriteFile(cfg.Replay.Record, recorder.Recording()); err != nil {
			log.Error("failed to write replay", logger.Err(err), logger.F("path", cfg.Replay.Record))
		} else {
			log.Info("replay written", logger.F("path", cfg.Replay.Record), logger.F("frames", recorder.Len()))
		}
	}

	if runErr != nil {
		log.Error("game loop failed", logger.Err(runErr))
		_ = zl.Sync()
		os.Exit(1)
	}
}

// applyFlags lets non-zero command line values win over the config file and
// environment.
func applyFlags(cfg *schema.Config, seed uint64, record string) {
	if seed != 0 {
		cfg.Seed = seed
	}
	if record != "" {
		cfg.Replay.Record = record
	}
}

// sessionSeed keeps a configured seed and derives one from the clock for 0.
func sessionSeed(configured uint64, now time.Time) uint64 {
	if configured != 0 {
		return configured
	}
	return uint64(now.UnixNano())
}
