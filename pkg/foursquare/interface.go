package foursquare

import "context"

// IFoursquare searches the Foursquare Places API.
type IFoursquare interface {
	// SearchPlaces runs one /places/search query. Results are returned as
	// Foursquare reports them, including entries without coordinates.
	SearchPlaces(ctx context.Context, req SearchRequest) ([]Place, error)
}

// New creates a new Foursquare client with the given configuration
func New(cfg Config) (IFoursquare, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newFoursquareImpl(cfg), nil
}
