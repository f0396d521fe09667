package repository

import (
	"context"

	"errand-planner/internal/model"
)

// Repository is the composed interface for the errand domain data store.
type Repository interface {
	HistoryRepository
	RouteRepository
}

// HistoryRepository stores planning history, newest first.
type HistoryRepository interface {
	// PrependHistory returns the entry as stored, with its final ID.
	PrependHistory(ctx context.Context, entry model.HistoryEntry) (model.HistoryEntry, error)
	ListHistory(ctx context.Context, opt ListHistoryOptions) ([]model.HistoryEntry, error)
	// ToggleHistory flips Completed. Returns a zero-value entry (ID == "")
	// when id is unknown.
	ToggleHistory(ctx context.Context, id string) (model.HistoryEntry, error)
	ClearHistory(ctx context.Context) error
}

// RouteRepository stores the most recent optimized route.
type RouteRepository interface {
	SaveLatestRoute(ctx context.Context, route model.OptimizedRoute) error
	// GetLatestRoute returns ok == false when nothing has been saved.
	GetLatestRoute(ctx context.Context) (route model.OptimizedRoute, ok bool, err error)
}

// KVStore is a blob store keyed by string. Get reports ok == false for a
// missing key.
type KVStore interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
