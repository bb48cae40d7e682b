package store

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pantry_store_operations_total",
			Help: "Total number of document store operations",
		},
		[]string{"op", "result"},
	)

	storeOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pantry_store_operation_duration_seconds",
			Help:    "Document store operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

type instrumented struct {
	next DocumentStore
}

// WithMetrics records Prometheus metrics for every call made to next.
func WithMetrics(next DocumentStore) DocumentStore {
	return &instrumented{next: next}
}

func observe(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	storeOperationsTotal.WithLabelValues(op, result).Inc()
	storeOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (s *instrumented) List(ctx context.Context, collection string) ([]Entry, error) {
	start := time.Now()
	entries, err := s.next.List(ctx, collection)
	observe("list", start, err)
	return entries, err
}

func (s *instrumented) Get(ctx context.Context, collection, key string) (Record, bool, error) {
	start := time.Now()
	rec, found, err := s.next.Get(ctx, collection, key)
	observe("get", start, err)
	return rec, found, err
}

func (s *instrumented) Put(ctx context.Context, collection, key string, rec Record) error {
	start := time.Now()
	err := s.next.Put(ctx, collection, key, rec)
	observe("put", start, err)
	return err
}

func (s *instrumented) Delete(ctx context.Context, collection, key string) error {
	start := time.Now()
	err := s.next.Delete(ctx, collection, key)
	observe("delete", start, err)
	return err
}

func (s *instrumented) Close() error {
	return s.next.Close()
}
