package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runContract exercises the behaviour every DocumentStore backend shares.
func runContract(t *testing.T, newStore func(t *testing.T) DocumentStore) {
	t.Run("list empty collection", func(t *testing.T) {
		s := newStore(t)
		entries, err := s.List(context.Background(), "Inventory")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("get missing key", func(t *testing.T) {
		s := newStore(t)
		_, found, err := s.Get(context.Background(), "Inventory", "ghost")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("put then get", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Put(ctx, "Inventory", "Milk", Record{Quantity: 2}))

		rec, found, err := s.Get(ctx, "Inventory", "Milk")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 2, rec.Quantity)

		_, found, err = s.Get(ctx, "Inventory", "milk")
		require.NoError(t, err)
		assert.False(t, found, "keys are case sensitive")
	})

	t.Run("put replaces", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Put(ctx, "Inventory", "rice", Record{Quantity: 9}))
		require.NoError(t, s.Put(ctx, "Inventory", "rice", Record{Quantity: 1}))

		rec, _, err := s.Get(ctx, "Inventory", "rice")
		require.NoError(t, err)
		assert.Equal(t, 1, rec.Quantity)
	})

	t.Run("list is ordered by key", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		for _, k := range []string{"tea", "Bread", "apple"} {
			require.NoError(t, s.Put(ctx, "Inventory", k, Record{Quantity: len(k)}))
		}
		require.NoError(t, s.Put(ctx, "Other", "zzz", Record{Quantity: 1}))

		entries, err := s.List(ctx, "Inventory")
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Key: "Bread", Record: Record{Quantity: 5}},
			{Key: "apple", Record: Record{Quantity: 5}},
			{Key: "tea", Record: Record{Quantity: 3}},
		}, entries)
	})

	t.Run("delete missing key succeeds", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Delete(context.Background(), "Inventory", "ghost"))
	})

	t.Run("delete removes", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.Put(ctx, "Inventory", "eggs", Record{Quantity: 12}))
		require.NoError(t, s.Delete(ctx, "Inventory", "eggs"))

		_, found, err := s.Get(ctx, "Inventory", "eggs")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		s := newStore(t)
		err := s.Put(context.Background(), "Inventory", "", Record{Quantity: 1})
		assert.ErrorIs(t, err, ErrInvalidKey)

		var se *Error
		require.True(t, errors.As(err, &se))
		assert.Equal(t, "put", se.Op)
	})
}

func TestMemoryStore_Contract(t *testing.T) {
	runContract(t, func(t *testing.T) DocumentStore {
		return NewMemoryStore()
	})
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.List(ctx, "Inventory")
	assert.ErrorIs(t, err, context.Canceled)

	err = s.Put(ctx, "Inventory", "milk", Record{Quantity: 1})
	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "milk", se.Key)
}

func TestMemoryStore_Clear(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, s.Put(ctx, "Inventory", "milk", Record{Quantity: 1}))

	s.Clear()

	entries, err := s.List(ctx, "Inventory")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWithMetrics_Delegates(t *testing.T) {
	s := WithMetrics(NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "Inventory", "flour", Record{Quantity: 2}))
	rec, found, err := s.Get(ctx, "Inventory", "flour")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, rec.Quantity)

	entries, err := s.List(ctx, "Inventory")
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	require.NoError(t, s.Delete(ctx, "Inventory", "flour"))
	assert.NoError(t, s.Close())
}

func TestError_Message(t *testing.T) {
	err := &Error{Op: "get", Collection: "Inventory", Key: "milk", Err: errors.New("timeout")}
	assert.Equal(t, "store get Inventory/milk: timeout", err.Error())

	err = &Error{Op: "list", Collection: "Inventory", Err: errors.New("timeout")}
	assert.Equal(t, "store list Inventory: timeout", err.Error())
}
