// Package main runs the Breakfast Run text adventure on the terminal.
// It wires together configuration, logging, content, and the game loop.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/breakfast-run/content"
	"github.com/cory-johannsen/breakfast-run/internal/config"
	"github.com/cory-johannsen/breakfast-run/internal/engine"
	"github.com/cory-johannsen/breakfast-run/internal/frontend/console"
	"github.com/cory-johannsen/breakfast-run/internal/game/world"
	"github.com/cory-johannsen/breakfast-run/internal/observability"
	"github.com/cory-johannsen/breakfast-run/internal/server"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "", "path to configuration file (defaults and ADVENTURE_* environment only when empty)")
	contentPath := flag.String("content", "", "path to a content YAML file (overrides game.content_path)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *contentPath != "" {
		cfg.Game.ContentPath = *contentPath
	}

	// Initialize logger
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	// Load content
	var c *world.Content
	if cfg.Game.ContentPath != "" {
		c, err = world.LoadContentFromFile(cfg.Game.ContentPath)
	} else {
		c, err = world.LoadContentFromBytes(content.BreakfastRun)
	}
	if err != nil {
		logger.Fatal("loading content", zap.Error(err), zap.String("path", cfg.Game.ContentPath))
	}

	startTime, err := cfg.Game.Start()
	if err != nil {
		logger.Fatal("parsing start time", zap.Error(err))
	}
	g, err := engine.NewGame(c, engine.Options{
		Clock:     engine.SystemClock{},
		StartTime: startTime,
		TimeLimit: cfg.Game.TimeLimit,
		TimeScale: cfg.Game.TimeScale,
	}, logger)
	if err != nil {
		logger.Fatal("creating game", zap.Error(err))
	}

	wrap, err := console.WrapperFor(cfg.Display.WrapMode)
	if err != nil {
		logger.Fatal("selecting wrap mode", zap.Error(err))
	}
	reader := console.NewReader(os.Stdin)
	printer := console.NewPrinter(os.Stdout, cfg.Display.WrapWidth, wrap, cfg.Display.Prompt)

	// Wire lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	gameDone := make(chan struct{})

	lifecycle := server.NewLifecycle(logger)
	lifecycle.Add("game", &server.FuncService{
		StartFn: func() error {
			defer close(gameDone)
			return g.Run(ctx, reader, printer)
		},
		StopFn: func() {
			cancel()
			_ = reader.Close()
			<-gameDone
		},
	})

	logger.Info("game initialized",
		zap.String("title", c.Title),
		zap.String("session", g.SessionID()),
		zap.Int("rooms", g.World().RoomCount()),
		zap.Duration("startup", time.Since(start)),
	)

	if err := lifecycle.Run(context.Background()); err != nil {
		logger.Error("game ended with error", zap.Error(err))
	}
}
