// Package recipe asks a text generation model for a recipe built around a search term.
package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const promptTemplate = "Suggest a simple recipe that uses the following pantry ingredients: %s. Keep it short."

var recipeRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "pantry_recipe_requests_total",
		Help: "Total number of recipe generation requests",
	},
	[]string{"result"},
)

// ErrEmptyResponse is wrapped in a GenerationError when the model answers with no text.
var ErrEmptyResponse = errors.New("model returned no text")

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerationError reports a failed recipe request.
type GenerationError struct {
	Query string
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate recipe for %q: %v", e.Query, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Requester builds the prompt for a search term and calls the generator.
type Requester struct {
	gen    Generator
	logger *zap.Logger
}

func NewRequester(gen Generator, logger *zap.Logger) *Requester {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Requester{gen: gen, logger: logger}
}

// Prompt is the text sent to the generator for query.
func Prompt(query string) string {
	return fmt.Sprintf(promptTemplate, query)
}

// GenerateRecipe returns the generated recipe for query. An empty query
// returns "" without calling the generator.
func (r *Requester) GenerateRecipe(ctx context.Context, query string) (string, error) {
	if query == "" {
		return "", nil
	}

	text, err := r.gen.Generate(ctx, Prompt(query))
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrEmptyResponse
	}
	if err != nil {
		recipeRequestsTotal.WithLabelValues("error").Inc()
		return "", &GenerationError{Query: query, Err: err}
	}

	recipeRequestsTotal.WithLabelValues("ok").Inc()
	r.logger.Debug("recipe generated", zap.String("query", query), zap.Int("length", len(text)))
	return text, nil
}
