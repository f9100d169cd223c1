// cmd/spawnwatch/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/highlite-tools/spawnwatch/internal/config"
	"github.com/highlite-tools/spawnwatch/internal/server"
	"github.com/highlite-tools/spawnwatch/internal/tracker"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: spawnwatch <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}

	config.Normalize(cfg)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	// --------------------
	// Build tracker + presentation
	// --------------------

	tr, err := tracker.Build(cfg, logger)
	if err != nil {
		logger.Fatal("tracker build failed", zap.Error(err))
	}

	broadcaster := server.NewBroadcaster(
		tr,
		time.Duration(cfg.Spawnwatch.Server.BroadcastMs)*time.Millisecond,
		logger.Named("broadcast"),
	)

	router := server.SetupRouter(tr, broadcaster, logger.Named("http"))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go tr.Run(ctx)
	go broadcaster.Run(ctx)

	srv := &http.Server{
		Addr:    cfg.Spawnwatch.Server.Listen,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("spawnwatch listening",
		zap.String("addr", cfg.Spawnwatch.Server.Listen),
		zap.String("source", cfg.Spawnwatch.Source.Endpoint))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
