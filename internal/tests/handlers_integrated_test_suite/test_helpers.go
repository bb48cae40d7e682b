package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"

	"github.com/rogerio-castellano/pantry-tracker/internal/app"
	"github.com/rogerio-castellano/pantry-tracker/internal/config"
	api "github.com/rogerio-castellano/pantry-tracker/internal/http"
	handler "github.com/rogerio-castellano/pantry-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/pantry-tracker/internal/http/rate_limiter"
)

// backendConfigs returns one config per live backend found in the environment.
// Every config gets its own collection so runs never see each other's items.
func backendConfigs(t *testing.T) map[string]*config.Config {
	t.Helper()

	configs := map[string]*config.Config{}
	collection := "it-" + uuid.NewString()

	if dbUrl := os.Getenv("DATABASE_URL"); dbUrl != "" {
		cfg := baseConfig(collection)
		cfg.Store.Driver = config.DriverPostgres
		cfg.Database.URL = dbUrl
		configs[config.DriverPostgres] = cfg
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg := baseConfig(collection)
		cfg.Store.Driver = config.DriverRedis
		cfg.Redis.Addr = addr
		cfg.Redis.Prefix = "pantry-it"
		configs[config.DriverRedis] = cfg
	}

	if len(configs) == 0 {
		t.Skip("neither DATABASE_URL nor REDIS_ADDR set")
	}
	return configs
}

func baseConfig(collection string) *config.Config {
	return &config.Config{
		Store:  config.StoreConfig{Collection: collection, Timeout: 3 * time.Second},
		Recipe: config.RecipeConfig{RateLimit: 100, Burst: 100},
	}
}

// newApp opens the backend described by cfg and removes everything it wrote on cleanup.
func newApp(t *testing.T, cfg *config.Config) (*app.App, http.Handler) {
	t.Helper()

	logger := zaptest.NewLogger(t)
	a, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("could not start app: %v", err)
	}
	t.Cleanup(func() {
		ctx := context.Background()
		if items, err := a.Inventory.Refresh(ctx); err == nil {
			for _, item := range items {
				_ = a.Store.Delete(ctx, cfg.Store.Collection, item.Name)
			}
		}
		a.Close()
	})

	if _, err := a.Inventory.Refresh(context.Background()); err != nil {
		t.Fatalf("initial refresh: %v", err)
	}

	limiter := rl.New(cfg.Recipe.RateLimit, cfg.Recipe.Burst)
	return a, api.NewRouter(handler.NewServer(a.Inventory, a.Recipes, logger), limiter, logger)
}

func do(r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
