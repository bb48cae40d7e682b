package handlers_test_suite

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/pantry-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/pantry-tracker/internal/http/rate_limiter"
)

func decodeRecipe(t *testing.T, body io.Reader) handler.RecipeResponse {
	t.Helper()
	var resp handler.RecipeResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestRequestRecipeHandler(t *testing.T) {
	t.Run("Generates and keeps the recipe", func(t *testing.T) {
		env := newTestEnv(t, nil)

		w := env.do(http.MethodPost, "/recipe", handler.RecipeRequest{Query: "bread"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		resp := decodeRecipe(t, w.Body)
		if resp.Recipe != "Toast the bread." || resp.Query != "bread" {
			t.Errorf("unexpected response %+v", resp)
		}

		if len(env.generator.prompts) != 1 || !strings.Contains(env.generator.prompts[0], "bread") {
			t.Errorf("expected one prompt mentioning bread, got %v", env.generator.prompts)
		}

		w = env.do(http.MethodGet, "/recipe", nil)
		if got := decodeRecipe(t, w.Body); got.Recipe != "Toast the bread." {
			t.Errorf("expected stored recipe, got %+v", got)
		}
	})

	t.Run("Empty query does not call the generator", func(t *testing.T) {
		env := newTestEnv(t, nil)

		w := env.do(http.MethodPost, "/recipe", handler.RecipeRequest{Query: ""})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		if len(env.generator.prompts) != 0 {
			t.Errorf("expected no generator calls, got %v", env.generator.prompts)
		}
	})

	t.Run("Failure keeps the previous recipe", func(t *testing.T) {
		env := newTestEnv(t, nil)
		env.do(http.MethodPost, "/recipe", handler.RecipeRequest{Query: "bread"})

		env.generator.fail(errors.New("quota exceeded"))
		w := env.do(http.MethodPost, "/recipe", handler.RecipeRequest{Query: "rice"})
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502 Bad Gateway, got %d", w.Code)
		}

		w = env.do(http.MethodGet, "/recipe", nil)
		got := decodeRecipe(t, w.Body)
		if got.Recipe != "Toast the bread." || got.Query != "bread" {
			t.Errorf("expected previous recipe to survive, got %+v", got)
		}
	})

	t.Run("Rate limited", func(t *testing.T) {
		env := newLimitedTestEnv(t, nil, rl.New(0.001, 1))

		first := env.do(http.MethodPost, "/recipe", handler.RecipeRequest{Query: "bread"})
		if first.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", first.Code)
		}

		second := env.do(http.MethodPost, "/recipe", handler.RecipeRequest{Query: "bread"})
		if second.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429 Too Many Requests, got %d", second.Code)
		}
	})
}
