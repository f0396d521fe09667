package optimizer

import (
	"context"
	"errors"

	"errand-planner/internal/model"
)

// ErrNoPlaces is returned for an empty place list.
var ErrNoPlaces = errors.New("no places to route")

// errInvalidWaypointOrder marks a directions answer whose order is not a
// permutation of the submitted places.
var errInvalidWaypointOrder = errors.New("waypoint_order is not a permutation of the input")

// Optimizer orders places into a single trip.
type Optimizer interface {
	Optimize(ctx context.Context, places []model.Place, origin model.Coordinate) (model.OptimizedRoute, error)
}
