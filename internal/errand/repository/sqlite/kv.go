package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Get returns the value under key, with ok == false when the row is absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `SELECT value FROM kv_store WHERE key = ?`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		s.l.Errorf(ctx, "%s: %v", s.scope("Get"), err)
		return nil, false, err
	}
	return []byte(value), true, nil
}

// Set upserts value under key and stamps updated_at.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, query, key, string(value), time.Now().UTC()); err != nil {
		s.l.Errorf(ctx, "%s: %v", s.scope("Set"), err)
		return err
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_store WHERE key = ?`
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		s.l.Errorf(ctx, "%s: %v", s.scope("Delete"), err)
		return err
	}
	return nil
}
