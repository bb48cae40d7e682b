// Package inventory keeps a local copy of the pantry in step with the document store.
package inventory

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/rogerio-castellano/pantry-tracker/internal/models"
	"github.com/rogerio-castellano/pantry-tracker/internal/store"
)

// Synchronizer applies item mutations to the store and re-reads the whole
// collection after each one. The local copy only ever holds what a full
// listing returned.
//
// Mutations are not serialized against each other. AddItem reads and then
// writes, so two concurrent AddItem calls on the same name can lose an
// increment.
type Synchronizer struct {
	store      store.DocumentStore
	collection string
	logger     *zap.Logger

	mu    sync.RWMutex
	items []models.Item
}

func NewSynchronizer(ds store.DocumentStore, collection string, logger *zap.Logger) *Synchronizer {
	if collection == "" {
		collection = store.DefaultCollection
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synchronizer{
		store:      ds,
		collection: collection,
		logger:     logger,
		items:      []models.Item{},
	}
}

// Refresh lists the collection and replaces the local inventory with the result.
func (s *Synchronizer) Refresh(ctx context.Context) ([]models.Item, error) {
	entries, err := s.store.List(ctx, s.collection)
	if err != nil {
		return nil, fmt.Errorf("refresh inventory: %w", err)
	}

	items := make([]models.Item, len(entries))
	for i, e := range entries {
		items[i] = models.Item{Name: e.Key, Quantity: e.Record.Quantity}
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	s.logger.Debug("inventory refreshed", zap.Int("items", len(items)))
	return cloneItems(items), nil
}

// AddItem increments the quantity stored under name, creating it at 1.
// An empty name is ignored.
func (s *Synchronizer) AddItem(ctx context.Context, name string) error {
	if name == "" {
		return nil
	}

	rec, found, err := s.store.Get(ctx, s.collection, name)
	if err != nil {
		return fmt.Errorf("add item %q: %w", name, err)
	}

	next := store.Record{Quantity: 1}
	if found {
		next.Quantity = rec.Quantity + 1
	}
	if err := s.store.Put(ctx, s.collection, name, next); err != nil {
		return fmt.Errorf("add item %q: %w", name, err)
	}
	s.logger.Debug("item added", zap.String("name", name), zap.Int("quantity", next.Quantity))

	_, err = s.Refresh(ctx)
	return err
}

// RemoveItem deletes name whether or not it exists.
func (s *Synchronizer) RemoveItem(ctx context.Context, name string) error {
	if err := s.store.Delete(ctx, s.collection, name); err != nil {
		return fmt.Errorf("remove item %q: %w", name, err)
	}
	s.logger.Debug("item removed", zap.String("name", name))

	_, err := s.Refresh(ctx)
	return err
}

// SetQuantity stores q verbatim, or deletes the item when q is zero or the
// removal sentinel. Negative values are written as given.
func (s *Synchronizer) SetQuantity(ctx context.Context, name string, q Quantity) error {
	if q.Removes() {
		if err := s.store.Delete(ctx, s.collection, name); err != nil {
			return fmt.Errorf("set quantity %q: %w", name, err)
		}
	} else {
		if err := s.store.Put(ctx, s.collection, name, store.Record{Quantity: q.Value()}); err != nil {
			return fmt.Errorf("set quantity %q: %w", name, err)
		}
	}
	s.logger.Debug("quantity set", zap.String("name", name), zap.Stringer("quantity", q))

	_, err := s.Refresh(ctx)
	return err
}

// Inventory returns a copy of the items read by the last successful Refresh.
func (s *Synchronizer) Inventory() []models.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneItems(s.items)
}

// View is the filtered view of the current inventory.
func (s *Synchronizer) View(query string) []models.Item {
	return Filter(s.Inventory(), query)
}

// Lookup finds name in the current inventory.
func (s *Synchronizer) Lookup(name string) (models.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.Name == name {
			return item, true
		}
	}
	return models.Item{}, false
}

func cloneItems(items []models.Item) []models.Item {
	out := make([]models.Item, len(items))
	copy(out, items)
	return out
}
