package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/rogerio-castellano/pantry-tracker/docs"
	"github.com/rogerio-castellano/pantry-tracker/internal/http/handlers"
	mw "github.com/rogerio-castellano/pantry-tracker/internal/http/middleware"
	rl "github.com/rogerio-castellano/pantry-tracker/internal/http/rate_limiter"
)

// NewRouter mounts the page, the JSON API and the operational endpoints.
// Recipe generation goes through limiter.
func NewRouter(s *handlers.Server, limiter *rl.Limiter, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(mw.RequestID, mw.Recovery(logger), mw.Logging(logger), mw.Metrics)

	r.Get("/", s.PageHandler)
	r.Route("/ui", func(r chi.Router) {
		r.Post("/items", s.PageAddItemHandler)
		r.Post("/items/{name}/increment", s.PageIncrementItemHandler)
		r.Post("/items/{name}/remove", s.PageRemoveItemHandler)
		r.Post("/items/{name}/quantity", s.PageSetQuantityHandler)
		r.With(limiter.Middleware).Post("/recipe", s.PageRecipeHandler)
	})

	r.Get("/items", s.GetItemsHandler)
	r.Post("/items", s.AddItemHandler)
	r.Post("/items/import", s.ImportItemsHandler)
	r.Post("/items/{name}/increment", s.IncrementItemHandler)
	r.Put("/items/{name}", s.SetQuantityHandler)
	r.Delete("/items/{name}", s.DeleteItemHandler)

	r.Get("/recipe", s.GetRecipeHandler)
	r.With(limiter.Middleware).Post("/recipe", s.RequestRecipeHandler)

	r.Get("/metrics/dashboard", s.GetDashboardMetricsHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/health", s.HealthHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
