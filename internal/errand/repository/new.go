package repository

import (
	"fmt"
	"sync"

	"errand-planner/pkg/log"
)

type implRepository struct {
	store KVStore
	l     log.Logger

	// mu serializes read-modify-write cycles on the history blob.
	mu sync.Mutex
}

// New creates a Repository that keeps history and the latest route as JSON
// blobs in store.
func New(store KVStore, l log.Logger) Repository {
	if store == nil {
		panic("errand/repository: store is required")
	}
	return &implRepository{store: store, l: l}
}

// scope prefixes log lines with the repository method name.
func (r *implRepository) scope(method string) string {
	return fmt.Sprintf("errand/repository.%s", method)
}
