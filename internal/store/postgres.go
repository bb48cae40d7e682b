package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	collection TEXT NOT NULL,
	key        TEXT NOT NULL,
	body       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (collection, key)
)`

type PostgresStore struct {
	db      *sql.DB
	timeout time.Duration
}

func NewPostgresStore(db *sql.DB, timeout time.Duration) *PostgresStore {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &PostgresStore{db: db, timeout: timeout}
}

// Migrate creates the documents table when it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, collection string) ([]Entry, error) {
	query := `SELECT key, body FROM documents WHERE collection = $1 ORDER BY key COLLATE "C"`
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, collection)
	if err != nil {
		return nil, wrap("list", collection, "", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e   Entry
			raw []byte
		)
		if err := rows.Scan(&e.Key, &raw); err != nil {
			return nil, wrap("list", collection, "", err)
		}
		if err := json.Unmarshal(raw, &e.Record); err != nil {
			return nil, wrap("list", collection, e.Key, fmt.Errorf("decode record: %w", err))
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("list", collection, "", err)
	}
	return entries, nil
}

func (s *PostgresStore) Get(ctx context.Context, collection, key string) (Record, bool, error) {
	if key == "" {
		return Record{}, false, wrap("get", collection, key, ErrInvalidKey)
	}
	query := `SELECT body FROM documents WHERE collection = $1 AND key = $2`
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var raw []byte
	err := s.db.QueryRowContext(ctx, query, collection, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, wrap("get", collection, key, err)
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, false, wrap("get", collection, key, fmt.Errorf("decode record: %w", err))
	}
	return rec, true, nil
}

func (s *PostgresStore) Put(ctx context.Context, collection, key string, rec Record) error {
	if key == "" {
		return wrap("put", collection, key, ErrInvalidKey)
	}
	body, err := json.Marshal(rec)
	if err != nil {
		return wrap("put", collection, key, err)
	}

	query := `
		INSERT INTO documents (collection, key, body, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (collection, key)
		DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
	`
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err = s.db.ExecContext(ctx, query, collection, key, string(body), time.Now().UTC())
	return wrap("put", collection, key, err)
}

func (s *PostgresStore) Delete(ctx context.Context, collection, key string) error {
	if key == "" {
		return wrap("delete", collection, key, ErrInvalidKey)
	}
	query := `DELETE FROM documents WHERE collection = $1 AND key = $2`
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, query, collection, key)
	return wrap("delete", collection, key, err)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
