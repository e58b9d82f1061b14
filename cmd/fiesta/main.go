package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"fluffy-fiesta/internal/agent"
	"fluffy-fiesta/internal/engine"
	"fluffy-fiesta/internal/infrastructure/storage"
	"fluffy-fiesta/internal/network"
	"fluffy-fiesta/internal/server"
	"fluffy-fiesta/internal/sprites"
	"fluffy-fiesta/internal/version"
	"fluffy-fiesta/pkg/level"
	"fluffy-fiesta/pkg/logger"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 1. Флаги
	var opts options
	fs := newFlagSet(&opts)
	_ = fs.Parse(os.Args[1:])

	// 2. Конфиг: файл, затем явно заданные флаги и окружение
	cfg, err := engine.LoadConfig(opts.configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}
	opts.apply(fs, &cfg)
	if port := os.Getenv("FIESTA_PORT"); port != "" {
		cfg.Port = port
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.LogFormat = format
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log := logger.For("main")
	log.Info(version.String())

	source := sprites.NewStaticSource(cfg.Sheets)

	// Режим проверки записи
	if opts.replayPath != "" {
		verifyReplay(cfg, source, opts.replayPath)
		return
	}

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid config")
	}
	if opts.headless && cfg.MaxTicks == 0 {
		log.Fatal("-headless needs -ticks")
	}

	// 3. Ядро
	game, err := engine.NewGame(cfg, cfg.Factory(), source)
	if errors.Is(err, level.ErrNoPlayers) {
		log.WithField("players", cfg.Players).Fatal("Nothing to simulate without players")
	}
	if err != nil {
		log.WithError(err).Fatal("Failed to create game")
	}
	log.WithFields(logrus.Fields{
		"seed":    cfg.Seed,
		"players": cfg.Players,
		"level":   cfg.Level,
	}).Info("Game ready")

	hub := network.NewBroadcaster()
	input := engine.NewInputManager(cfg.Players)
	if cfg.Autopilot {
		input.SetAllAutopilot(true)
	}

	runner := engine.NewRunner(cfg, game, input, hub, agent.NewAutopilot(cfg.Seed))
	runner.Unthrottled = opts.headless
	if cfg.Record {
		runner.Recorder = engine.NewRecorder(cfg)
	}

	// 4. Симуляция и сервер до сигнала или лимита тиков
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		return runner.Run(gctx)
	})
	if !opts.headless {
		srv := server.New(runner, engine.NewDispatcher(input), hub, cfg.Port)
		g.Go(func() error {
			return srv.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Shutdown with error")
	}
	log.Info("Shutting down...")

	digest := game.Digest()
	log.WithFields(logrus.Fields{
		"tick":   game.Tick(),
		"digest": digest,
	}).Info("Final state")

	if runner.Recorder != nil {
		saveReplay(cfg, runner.Recorder, digest)
	}
}

func saveReplay(cfg engine.Config, rec *engine.Recorder, digest uint64) {
	log := logger.For("replay")

	svc, err := storage.NewReplayService(cfg.ReplayDir)
	if err != nil {
		log.WithError(err).Error("Replay not saved")
		return
	}
	path, err := svc.Save(rec.Finish(digest))
	if err != nil {
		log.WithError(err).Error("Replay not saved")
		return
	}
	log.WithFields(logrus.Fields{"path": path, "frames": rec.Len()}).Info("Replay saved")
}

func verifyReplay(cfg engine.Config, source sprites.Source, path string) {
	log := logger.For("replay").WithField("path", path)

	svc := &storage.ReplayService{}
	session, err := svc.Load(path)
	if err != nil {
		log.WithError(err).Fatal("Failed to load replay")
	}

	game, err := engine.Playback(cfg, source, session)
	if err != nil {
		log.WithError(err).Fatal("Replay verification failed")
	}
	log.WithFields(logrus.Fields{
		"tick":   game.Tick(),
		"digest": game.Digest(),
	}).Info("Replay OK")
}
