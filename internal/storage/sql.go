package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Dialect selects the placeholder style of the SQL backend.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// SQL is a KV backed by the collections table.
type SQL struct {
	db     *sql.DB
	get    string
	upsert string
}

func NewSQL(db *sql.DB, d Dialect) *SQL {
	s := &SQL{db: db}

	switch d {
	case Postgres:
		s.get = `SELECT value FROM collections WHERE key = $1`
		s.upsert = `
			INSERT INTO collections (key, value, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
		`
	default:
		s.get = `SELECT value FROM collections WHERE key = ?`
		s.upsert = `
			INSERT INTO collections (key, value, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`
	}

	return s
}

func (s *SQL) Get(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := s.db.QueryRowContext(ctx, s.get, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}

	return value, true, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, s.upsert, key, value, time.Now().UTC()); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}

	return nil
}
