package directions

import "context"

// IDirections wraps the Google Directions API.
type IDirections interface {
	// OptimizeRoundTrip requests a round trip from origin back to origin that
	// visits every waypoint, letting Google choose the waypoint order.
	OptimizeRoundTrip(ctx context.Context, origin LatLng, waypoints []LatLng) (*Route, error)
}

// New creates a new Directions client with the given configuration
func New(cfg Config) (IDirections, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newDirectionsImpl(cfg), nil
}
