package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 3 * time.Second

// RedisStore keeps each collection in one hash: field is the document key,
// value is the JSON encoded record.
type RedisStore struct {
	rdb     *redis.Client
	prefix  string
	timeout time.Duration
}

func NewRedisStore(rdb *redis.Client, prefix string, timeout time.Duration) *RedisStore {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RedisStore{rdb: rdb, prefix: prefix, timeout: timeout}
}

func (s *RedisStore) hashKey(collection string) string {
	if s.prefix == "" {
		return collection
	}
	return s.prefix + ":" + collection
}

func (s *RedisStore) List(ctx context.Context, collection string) ([]Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	fields, err := s.rdb.HGetAll(ctx, s.hashKey(collection)).Result()
	if err != nil {
		return nil, wrap("list", collection, "", err)
	}

	entries := make([]Entry, 0, len(fields))
	for key, raw := range fields {
		var rec Record
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, wrap("list", collection, key, fmt.Errorf("decode record: %w", err))
		}
		entries = append(entries, Entry{Key: key, Record: rec})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key })

	return entries, nil
}

func (s *RedisStore) Get(ctx context.Context, collection, key string) (Record, bool, error) {
	if key == "" {
		return Record{}, false, wrap("get", collection, key, ErrInvalidKey)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.rdb.HGet(ctx, s.hashKey(collection), key).Result()
	if errors.Is(err, redis.Nil) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, wrap("get", collection, key, err)
	}

	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return Record{}, false, wrap("get", collection, key, fmt.Errorf("decode record: %w", err))
	}
	return rec, true, nil
}

func (s *RedisStore) Put(ctx context.Context, collection, key string, rec Record) error {
	if key == "" {
		return wrap("put", collection, key, ErrInvalidKey)
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return wrap("put", collection, key, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return wrap("put", collection, key, s.rdb.HSet(ctx, s.hashKey(collection), key, data).Err())
}

func (s *RedisStore) Delete(ctx context.Context, collection, key string) error {
	if key == "" {
		return wrap("delete", collection, key, ErrInvalidKey)
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return wrap("delete", collection, key, s.rdb.HDel(ctx, s.hashKey(collection), key).Err())
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
