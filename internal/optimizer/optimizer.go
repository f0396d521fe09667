package optimizer

import (
	"context"
	"fmt"
	"math"

	"errand-planner/internal/model"
	"errand-planner/pkg/directions"
)

// Optimize orders places into a round trip from origin.
// It fails only for an empty input.
func (o *RouteOptimizer) Optimize(ctx context.Context, places []model.Place, origin model.Coordinate) (model.OptimizedRoute, error) {
	if len(places) == 0 {
		return model.OptimizedRoute{}, ErrNoPlaces
	}

	if o.directions == nil {
		o.l.Debugf(ctx, "%s: routing key not configured, using distance sort", LogPrefixOptimize)
		return DistanceSort(places, origin), nil
	}

	route, err := o.optimizeRemote(ctx, places, origin)
	if err != nil {
		o.l.Warnf(ctx, "%s: directions failed, using distance sort: %v", LogPrefixOptimize, err)
		return DistanceSort(places, origin), nil
	}

	return route, nil
}

func (o *RouteOptimizer) optimizeRemote(ctx context.Context, places []model.Place, origin model.Coordinate) (model.OptimizedRoute, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	waypoints := make([]directions.LatLng, len(places))
	for i, p := range places {
		waypoints[i] = directions.LatLng{Lat: p.Latitude, Lng: p.Longitude}
	}

	route, err := o.directions.OptimizeRoundTrip(ctx, directions.LatLng{Lat: origin.Latitude, Lng: origin.Longitude}, waypoints)
	if err != nil {
		return model.OptimizedRoute{}, err
	}

	ordered, err := reorder(places, route.WaypointOrder)
	if err != nil {
		return model.OptimizedRoute{}, err
	}

	return model.OptimizedRoute{
		Places:        ordered,
		TotalDistance: float64(route.TotalDistance()),
		TotalTime:     int(math.Round(float64(route.TotalDuration()) / 60)),
		Polyline:      route.OverviewPolyline,
		Strategy:      model.StrategyDirections,
	}, nil
}

// reorder applies a waypoint order, which must be a permutation of the
// indices of places.
func reorder(places []model.Place, order []int) ([]model.Place, error) {
	if len(order) != len(places) {
		return nil, fmt.Errorf("%w: got %d indices for %d places", errInvalidWaypointOrder, len(order), len(places))
	}

	seen := make([]bool, len(places))
	ordered := make([]model.Place, len(places))
	for i, idx := range order {
		if idx < 0 || idx >= len(places) || seen[idx] {
			return nil, fmt.Errorf("%w: index %d", errInvalidWaypointOrder, idx)
		}
		seen[idx] = true
		ordered[i] = places[idx]
	}
	return ordered, nil
}
