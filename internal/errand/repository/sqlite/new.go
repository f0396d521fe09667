package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"errand-planner/internal/errand/repository"
	"errand-planner/pkg/log"
)

// Store keeps key/value blobs in the kv_store table.
type Store struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed KVStore. Call Migrate before first use.
func New(db *sql.DB, l log.Logger) *Store {
	if db == nil {
		panic("errand/repository/sqlite: db is required")
	}
	return &Store{db: db, l: l}
}

var _ repository.KVStore = (*Store)(nil)

// Migrate creates the kv_store table when missing.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, repository.Schema); err != nil {
		return fmt.Errorf("sqlite migrate: %w", err)
	}
	return nil
}

func (s *Store) scope(method string) string {
	return fmt.Sprintf("errand/repository/sqlite.%s", method)
}
