package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryStore is an in-memory implementation of DocumentStore.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]Record
}

// NewMemoryStore creates a new instance of MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]map[string]Record),
	}
}

// List returns the collection's documents ordered by key.
func (s *MemoryStore) List(ctx context.Context, collection string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, wrap("list", collection, "", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.collections[collection]
	entries := make([]Entry, 0, len(docs))
	for key, rec := range docs {
		entries = append(entries, Entry{Key: key, Record: rec})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	return entries, nil
}

// Get retrieves a document by key.
func (s *MemoryStore) Get(ctx context.Context, collection, key string) (Record, bool, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, false, wrap("get", collection, key, err)
	}
	if key == "" {
		return Record{}, false, wrap("get", collection, key, ErrInvalidKey)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.collections[collection][key]
	return rec, ok, nil
}

// Put stores rec under key, replacing any previous document.
func (s *MemoryStore) Put(ctx context.Context, collection, key string, rec Record) error {
	if err := ctx.Err(); err != nil {
		return wrap("put", collection, key, err)
	}
	if key == "" {
		return wrap("put", collection, key, ErrInvalidKey)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string]Record)
		s.collections[collection] = docs
	}
	docs[key] = rec
	return nil
}

// Delete removes a document by key. Missing keys are ignored.
func (s *MemoryStore) Delete(ctx context.Context, collection, key string) error {
	if err := ctx.Err(); err != nil {
		return wrap("delete", collection, key, err)
	}
	if key == "" {
		return wrap("delete", collection, key, ErrInvalidKey)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], key)
	return nil
}

// Clear drops every collection.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	s.collections = make(map[string]map[string]Record)
	s.mu.Unlock()
}

func (s *MemoryStore) Close() error {
	return nil
}
