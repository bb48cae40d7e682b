package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/pantry-tracker/internal/http/handlers"
	"github.com/rogerio-castellano/pantry-tracker/internal/inventory"
)

func TestDashboardMetricsHandler(t *testing.T) {
	env := newTestEnv(t, map[string]int{"eggs": 12, "flour": 2, "salt": 1})

	w := env.do(http.MethodGet, "/metrics/dashboard", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var metrics inventory.Summary
	if err := json.NewDecoder(w.Body).Decode(&metrics); err != nil {
		t.Fatalf("failed to decode metrics: %v", err)
	}

	if metrics.TotalItems != 3 {
		t.Errorf("expected 3 items, got %d", metrics.TotalItems)
	}
	if metrics.TotalUnits != 15 {
		t.Errorf("expected 15 units, got %d", metrics.TotalUnits)
	}
	if metrics.LargestItem.Name != "eggs" {
		t.Errorf("expected eggs as largest item, got %q", metrics.LargestItem.Name)
	}
}

func TestHealthHandler(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
}

func TestPrometheusEndpoint(t *testing.T) {
	env := newTestEnv(t, nil)
	env.do(http.MethodGet, "/items", nil)

	w := env.do(http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Errorf("expected request counter in exposition")
	}
}

func TestRequestIDHeader(t *testing.T) {
	env := newTestEnv(t, nil)

	w := env.do(http.MethodGet, "/health", nil)
	if w.Header().Get("X-Request-ID") == "" {
		t.Errorf("expected X-Request-ID on response")
	}
}
