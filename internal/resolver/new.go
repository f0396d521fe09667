package resolver

import (
	"github.com/hashicorp/golang-lru/v2/expirable"

	"errand-planner/pkg/foursquare"
	"errand-planner/pkg/log"
)

// PlaceResolver resolves tasks against Foursquare with a relaxed second query.
type PlaceResolver struct {
	places foursquare.IFoursquare
	cache  *expirable.LRU[string, []foursquare.Place]
	cfg    Config
	l      log.Logger
}

// Ensure PlaceResolver implements Resolver interface
var _ Resolver = (*PlaceResolver)(nil)

// New creates a new PlaceResolver. A nil places client resolves nothing.
func New(places foursquare.IFoursquare, cfg Config, l log.Logger) *PlaceResolver {
	cfg.setDefaults()
	return &PlaceResolver{
		places: places,
		cache:  expirable.NewLRU[string, []foursquare.Place](cfg.CacheSize, nil, cfg.CacheTTL),
		cfg:    cfg,
		l:      l,
	}
}
