// Package store provides the keyed document collection the pantry inventory is persisted in.
package store

import (
	"context"
	"errors"
	"fmt"
)

// DefaultCollection is the collection the inventory lives in.
const DefaultCollection = "Inventory"

// ErrInvalidKey is returned when a document key is empty.
var ErrInvalidKey = errors.New("document key cannot be empty")

// Record is the body stored under an item name.
type Record struct {
	Quantity int `json:"quantity"`
}

// Entry is a listed document: its key and body.
type Entry struct {
	Key    string
	Record Record
}

// DocumentStore is a keyed document collection. Implementations list entries
// ordered by key, report a missing key from Get as found == false, and treat
// deleting a missing key as success.
type DocumentStore interface {
	// List returns every document of the collection.
	List(ctx context.Context, collection string) ([]Entry, error)

	// Get retrieves the document stored under key.
	Get(ctx context.Context, collection, key string) (Record, bool, error)

	// Put inserts or fully replaces the document stored under key.
	Put(ctx context.Context, collection, key string, rec Record) error

	// Delete removes the document stored under key.
	Delete(ctx context.Context, collection, key string) error

	Close() error
}

// Error is returned by every backend when a remote call fails.
type Error struct {
	Op         string
	Collection string
	Key        string
	Err        error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("store %s %s: %v", e.Op, e.Collection, e.Err)
	}
	return fmt.Sprintf("store %s %s/%s: %v", e.Op, e.Collection, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(op, collection, key string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Op: op, Collection: collection, Key: key, Err: err}
}
