package resolver

import (
	"context"
	"time"

	"errand-planner/internal/model"
)

// Resolver finds the nearest place for one task.
type Resolver interface {
	// Resolve returns nil when neither search finds a usable place.
	Resolve(ctx context.Context, task model.TaskItem, origin model.Coordinate) *model.Place
}

// Config tunes the search. Zero values take the package defaults.
type Config struct {
	Radius    int
	Limit     int
	Timeout   time.Duration
	CacheSize int
	CacheTTL  time.Duration
}

func (c *Config) setDefaults() {
	if c.Radius <= 0 {
		c.Radius = DefaultRadius
	}
	if c.Limit <= 0 {
		c.Limit = DefaultLimit
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultSearchTimeout
	}
	if c.CacheSize <= 0 {
		c.CacheSize = DefaultCacheSize
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = DefaultCacheTTL
	}
}
