package recipe

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Panel holds the most recent recipe and whether a request is pending.
// A failed request leaves the previous recipe in place.
type Panel struct {
	requester *Requester
	logger    *zap.Logger

	mu      sync.RWMutex
	recipe  string
	query   string
	pending int
}

func NewPanel(requester *Requester, logger *zap.Logger) *Panel {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Panel{requester: requester, logger: logger}
}

// Request generates a recipe for query and stores it on success.
// Empty queries are ignored.
func (p *Panel) Request(ctx context.Context, query string) (string, error) {
	if query == "" {
		return p.Recipe(), nil
	}

	p.mu.Lock()
	p.pending++
	p.mu.Unlock()

	text, err := p.requester.GenerateRecipe(ctx, query)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending--
	if err != nil {
		p.logger.Error("error generating recipe", zap.String("query", query), zap.Error(err))
		return p.recipe, err
	}
	p.recipe = text
	p.query = query
	return text, nil
}

// Recipe is the last successfully generated recipe, or "".
func (p *Panel) Recipe() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.recipe
}

// Query is the search term the current recipe was generated for.
func (p *Panel) Query() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.query
}

// Loading reports whether a request is in flight.
func (p *Panel) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.pending > 0
}
