package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgDB is the part of *pgxpool.Pool the store needs.
type PgDB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

const pgSchema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        text PRIMARY KEY,
	value      text NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`

const pgUpsert = `
INSERT INTO kv_store(key, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

// PgStore keeps every key as one row of kv_store.
type PgStore struct{ db PgDB }

func NewPgStore(db PgDB) *PgStore { return &PgStore{db: db} }

func (s *PgStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, pgSchema); err != nil {
		return fmt.Errorf("create kv_store: %w", err)
	}
	return nil
}

func (s *PgStore) Load(ctx context.Context, key string) ([]byte, error) {
	var v string
	err := s.db.QueryRow(ctx, `SELECT value FROM kv_store WHERE key=$1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func (s *PgStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.Exec(ctx, pgUpsert, key, string(value))
	return err
}

func (s *PgStore) Clear(ctx context.Context, key string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM kv_store WHERE key=$1`, key)
	return err
}

// SaveBatch upserts every entry inside one transaction.
func (s *PgStore) SaveBatch(ctx context.Context, values map[string][]byte) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for k, v := range values {
		if _, err := tx.Exec(ctx, pgUpsert, k, string(v)); err != nil {
			return fmt.Errorf("upsert %s: %w", k, err)
		}
	}
	return tx.Commit(ctx)
}
