package optimizer

import (
	"time"

	"errand-planner/pkg/directions"
	"errand-planner/pkg/log"
)

// RouteOptimizer asks Google Directions for the best order and falls back
// to a distance sort.
type RouteOptimizer struct {
	directions directions.IDirections
	timeout    time.Duration
	l          log.Logger
}

// Ensure RouteOptimizer implements Optimizer interface
var _ Optimizer = (*RouteOptimizer)(nil)

// New creates a new RouteOptimizer. A nil directions client always uses the
// distance sort.
func New(dir directions.IDirections, timeout time.Duration, l log.Logger) *RouteOptimizer {
	if timeout <= 0 {
		timeout = DefaultDirectionsTimeout
	}
	return &RouteOptimizer{
		directions: dir,
		timeout:    timeout,
		l:          l,
	}
}
