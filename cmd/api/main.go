package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coachpad/matchtime/internal/app"
	"github.com/coachpad/matchtime/internal/config"
	"github.com/coachpad/matchtime/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	srv, cleanup, err := app.NewHTTPServer(cfg, logger)
	if err != nil {
		logger.Error(ctx, "build app", "error", err)
		os.Exit(1)
	}
	defer func() { _ = cleanup() }()

	go func() {
		logger.Info(ctx, "http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "http server failed", "error", err)
			os.Exit(1)
		}
	}()

	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-signalCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info(ctx, "http server stopped")
}
