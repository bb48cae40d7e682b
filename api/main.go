package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/pantry-tracker/internal/app"
	"github.com/rogerio-castellano/pantry-tracker/internal/config"
	pantryhttp "github.com/rogerio-castellano/pantry-tracker/internal/http"
	"github.com/rogerio-castellano/pantry-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/pantry-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/pantry-tracker/internal/logger"
)

// @title Pantry Tracker API
// @version 1.0
// @description REST API for tracking pantry items and generating recipe suggestions.
// @host localhost:8080
// @BasePath /
func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", os.Getenv("PANTRY_CONFIG"), "path to a config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("could not load configuration: %v", err)
		return 1
	}

	lg, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Printf("could not build logger: %v", err)
		return 1
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, lg)
	if err != nil {
		lg.Error("could not start", zap.Error(err))
		return 1
	}
	defer func() {
		if err := a.Close(); err != nil {
			lg.Warn("closing store", zap.Error(err))
		}
	}()

	// An unreachable store at startup is not fatal; the page shows an empty
	// pantry until the next successful refresh.
	if items, err := a.Inventory.Refresh(ctx); err != nil {
		lg.Warn("initial refresh failed", zap.Error(err))
	} else {
		lg.Info("inventory loaded", zap.Int("items", len(items)))
	}

	limiter := rl.New(cfg.Recipe.RateLimit, cfg.Recipe.Burst)
	go limiter.StartVisitorCleanupLoop(ctx, time.Minute)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           pantryhttp.NewRouter(handlers.NewServer(a.Inventory, a.Recipes, lg.Named("http")), limiter, lg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		lg.Info("server running", zap.String("addr", cfg.Server.Addr), zap.String("store", cfg.Store.Driver))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server error", zap.Error(err))
			return 1
		}
	case <-ctx.Done():
		lg.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			lg.Error("graceful shutdown failed", zap.Error(err))
			return 1
		}
	}

	lg.Info("server stopped")
	return 0
}
