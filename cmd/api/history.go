package main

import (
	"context"
	"database/sql"
	"fmt"

	"errand-planner/config"
	"errand-planner/config/postgre"
	"errand-planner/config/sqlite"
	"errand-planner/internal/errand/repository"
	"errand-planner/internal/errand/repository/memory"
	pgStore "errand-planner/internal/errand/repository/postgre"
	sqliteStore "errand-planner/internal/errand/repository/sqlite"
	"errand-planner/pkg/log"
)

// openHistoryStore returns the configured KVStore. db is nil for the memory
// driver. The returned close func is always safe to call.
func openHistoryStore(ctx context.Context, cfg config.HistoryConfig, l log.Logger) (repository.KVStore, *sql.DB, func(), error) {
	noop := func() {}

	switch cfg.Driver {
	case "", config.HistoryDriverMemory:
		l.Info(ctx, "History store: memory")
		return memory.New(), nil, noop, nil

	case config.HistoryDriverSQLite:
		db, err := sqlite.Connect(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, noop, err
		}
		store := sqliteStore.New(db, l)
		if err := store.Migrate(ctx); err != nil {
			sqlite.Disconnect(ctx, db)
			return nil, nil, noop, err
		}
		l.Infof(ctx, "History store: sqlite (%s)", cfg.DSN)
		return store, db, func() { sqlite.Disconnect(context.Background(), db) }, nil

	case config.HistoryDriverPostgres:
		db, err := postgre.Connect(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, noop, err
		}
		store := pgStore.New(db, l)
		if err := store.Migrate(ctx); err != nil {
			postgre.Disconnect(ctx, db)
			return nil, nil, noop, err
		}
		l.Info(ctx, "History store: postgres")
		return store, db, func() { postgre.Disconnect(context.Background(), db) }, nil

	default:
		return nil, nil, noop, fmt.Errorf("unknown history driver %q", cfg.Driver)
	}
}
