package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	api "github.com/rogerio-castellano/pantry-tracker/internal/http"
	handler "github.com/rogerio-castellano/pantry-tracker/internal/http/handlers"
	rl "github.com/rogerio-castellano/pantry-tracker/internal/http/rate_limiter"
	"github.com/rogerio-castellano/pantry-tracker/internal/inventory"
	"github.com/rogerio-castellano/pantry-tracker/internal/recipe"
	"github.com/rogerio-castellano/pantry-tracker/internal/store"
)

// fakeGenerator answers with a fixed recipe, or fails while err is set.
type fakeGenerator struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

func (g *fakeGenerator) fail(err error) {
	g.mu.Lock()
	g.err = err
	g.mu.Unlock()
}

// flakyStore fails every operation while down is set.
type flakyStore struct {
	store.DocumentStore
	mu   sync.Mutex
	down bool
}

var errUnavailable = errors.New("connection refused")

func (f *flakyStore) setDown(down bool) {
	f.mu.Lock()
	f.down = down
	f.mu.Unlock()
}

func (f *flakyStore) isDown() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.down
}

func (f *flakyStore) List(ctx context.Context, collection string) ([]store.Entry, error) {
	if f.isDown() {
		return nil, &store.Error{Op: "list", Collection: collection, Err: errUnavailable}
	}
	return f.DocumentStore.List(ctx, collection)
}

func (f *flakyStore) Get(ctx context.Context, collection, key string) (store.Record, bool, error) {
	if f.isDown() {
		return store.Record{}, false, &store.Error{Op: "get", Collection: collection, Key: key, Err: errUnavailable}
	}
	return f.DocumentStore.Get(ctx, collection, key)
}

func (f *flakyStore) Put(ctx context.Context, collection, key string, rec store.Record) error {
	if f.isDown() {
		return &store.Error{Op: "put", Collection: collection, Key: key, Err: errUnavailable}
	}
	return f.DocumentStore.Put(ctx, collection, key, rec)
}

func (f *flakyStore) Delete(ctx context.Context, collection, key string) error {
	if f.isDown() {
		return &store.Error{Op: "delete", Collection: collection, Key: key, Err: errUnavailable}
	}
	return f.DocumentStore.Delete(ctx, collection, key)
}

type testEnv struct {
	router    http.Handler
	store     *flakyStore
	inventory *inventory.Synchronizer
	generator *fakeGenerator
}

// newTestEnv builds the full router over an in-memory store seeded with items.
func newTestEnv(t *testing.T, seed map[string]int) *testEnv {
	t.Helper()
	return newLimitedTestEnv(t, seed, rl.New(100, 100))
}

func newLimitedTestEnv(t *testing.T, seed map[string]int, limiter *rl.Limiter) *testEnv {
	t.Helper()

	ds := &flakyStore{DocumentStore: store.NewMemoryStore()}
	ctx := context.Background()
	for name, qty := range seed {
		if err := ds.Put(ctx, store.DefaultCollection, name, store.Record{Quantity: qty}); err != nil {
			t.Fatalf("seeding %q: %v", name, err)
		}
	}

	inv := inventory.NewSynchronizer(ds, store.DefaultCollection, nil)
	if _, err := inv.Refresh(ctx); err != nil {
		t.Fatalf("initial refresh: %v", err)
	}

	gen := &fakeGenerator{text: "Toast the bread."}
	panel := recipe.NewPanel(recipe.NewRequester(gen, nil), nil)

	return &testEnv{
		router:    api.NewRouter(handler.NewServer(inv, panel, nil), limiter, nil),
		store:     ds,
		inventory: inv,
		generator: gen,
	}
}

func (e *testEnv) do(method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postForm(target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) stored(t *testing.T) map[string]int {
	t.Helper()
	entries, err := e.store.DocumentStore.List(context.Background(), store.DefaultCollection)
	if err != nil {
		t.Fatalf("listing store: %v", err)
	}
	out := make(map[string]int, len(entries))
	for _, entry := range entries {
		out[entry.Key] = entry.Record.Quantity
	}
	return out
}

func decodeInventory(t *testing.T, w *httptest.ResponseRecorder) handler.InventoryResult {
	t.Helper()
	var resp handler.InventoryResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
