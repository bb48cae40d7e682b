package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/pantry-tracker/internal/inventory"
	"github.com/rogerio-castellano/pantry-tracker/internal/recipe"
	"github.com/rogerio-castellano/pantry-tracker/internal/store"
)

// Server holds the dependencies every handler dispatches to.
type Server struct {
	inventory *inventory.Synchronizer
	recipes   *recipe.Panel
	logger    *zap.Logger
}

func NewServer(inv *inventory.Synchronizer, recipes *recipe.Panel, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{inventory: inv, recipes: recipes, logger: logger}
}

// failed logs err and answers with a status derived from its type.
func (s *Server) failed(w http.ResponseWriter, r *http.Request, action string, err error) {
	s.logger.Error("request failed",
		zap.String("action", action),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)

	var storeErr *store.Error
	var genErr *recipe.GenerationError
	switch {
	case errors.As(err, &storeErr):
		http.Error(w, "could not "+action+": inventory store unavailable", http.StatusBadGateway)
	case errors.As(err, &genErr):
		http.Error(w, "could not "+action+": recipe generation failed", http.StatusBadGateway)
	default:
		http.Error(w, "could not "+action, http.StatusInternalServerError)
	}
}
