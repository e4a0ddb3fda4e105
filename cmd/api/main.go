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

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/creatorclub/cc-backend/config"
	"github.com/creatorclub/cc-backend/internal/bootstrap"
	"github.com/creatorclub/cc-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck

	app := bootstrap.Build(cfg, zl)

	// Periodic sweep re-running the forward pass. The event hub already
	// keeps the ledger consistent; this catches state written by anything
	// that bypassed the API, such as a manual redis edit.
	c := cron.New()
	if _, err := c.AddFunc(cfg.App.ResyncCron, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		app.Syncer.Rebuild(ctx)
	}); err != nil {
		zl.Fatal("invalid resync schedule", zap.String("spec", cfg.App.ResyncCron), zap.Error(err))
	}
	c.Start()
	defer c.Stop()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zl.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Warn("forced shutdown", zap.Error(err))
	}
	if err := app.Redis.Close(); err != nil {
		zl.Warn("redis close", zap.Error(err))
	}
}
