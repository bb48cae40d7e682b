// Package app wires the store, synchronizer and recipe panel from configuration.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/pantry-tracker/internal/config"
	"github.com/rogerio-castellano/pantry-tracker/internal/db"
	"github.com/rogerio-castellano/pantry-tracker/internal/inventory"
	"github.com/rogerio-castellano/pantry-tracker/internal/recipe"
	"github.com/rogerio-castellano/pantry-tracker/internal/redissvc"
	"github.com/rogerio-castellano/pantry-tracker/internal/store"
)

type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Store     store.DocumentStore
	Inventory *inventory.Synchronizer
	Recipes   *recipe.Panel
}

// New connects to the configured store and builds the components on top of it.
// The inventory is not refreshed here; callers decide when to load it.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	ds, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	gen, err := NewGenerator(ctx, cfg, logger)
	if err != nil {
		_ = ds.Close()
		return nil, err
	}

	return &App{
		Config:    cfg,
		Logger:    logger,
		Store:     ds,
		Inventory: inventory.NewSynchronizer(ds, cfg.Store.Collection, logger.Named("inventory")),
		Recipes:   recipe.NewPanel(recipe.NewRequester(gen, logger.Named("recipe")), logger.Named("recipe")),
	}, nil
}

// OpenStore returns the configured backend wrapped with metrics.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.DocumentStore, error) {
	var ds store.DocumentStore

	switch cfg.Store.Driver {
	case config.DriverMemory:
		ds = store.NewMemoryStore()
	case config.DriverRedis:
		rdb, err := redissvc.Connect(ctx, redissvc.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		ds = store.NewRedisStore(rdb, cfg.Redis.Prefix, cfg.Store.Timeout)
	case config.DriverPostgres:
		database, err := db.Connect(ctx, cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		pg := store.NewPostgresStore(database, cfg.Store.Timeout)
		if err := pg.Migrate(ctx); err != nil {
			_ = pg.Close()
			return nil, err
		}
		ds = pg
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDriver, cfg.Store.Driver)
	}

	logger.Info("document store ready",
		zap.String("driver", cfg.Store.Driver),
		zap.String("collection", cfg.Store.Collection),
	)
	return store.WithMetrics(ds), nil
}

// NewGenerator returns a Gemini generator, or a disabled one without an API key.
func NewGenerator(ctx context.Context, cfg *config.Config, logger *zap.Logger) (recipe.Generator, error) {
	if cfg.GenAI.APIKey == "" {
		logger.Warn("genai.api_key not set, recipe generation disabled")
		return recipe.Disabled{}, nil
	}

	gen, err := recipe.NewGenAIGenerator(ctx, cfg.GenAI.APIKey, cfg.GenAI.Model)
	if err != nil {
		return nil, err
	}
	logger.Info("recipe generator ready", zap.String("generator", gen.Name()))
	return gen, nil
}

func (a *App) Close() error {
	return a.Store.Close()
}
