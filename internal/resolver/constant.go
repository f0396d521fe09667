package resolver

import (
	"time"

	"errand-planner/internal/model"
)

// Log prefixes
const (
	LogPrefixResolve = "internal.resolver.Resolve"
)

// Search defaults
const (
	DefaultRadius        = 3000
	DefaultLimit         = 20
	DefaultSearchTimeout = 10 * time.Second
	DefaultCacheSize     = 256
	DefaultCacheTTL      = 5 * time.Minute

	HoursNotAvailable = "Hours not available"
)

// categoryIDs maps each category to its Foursquare taxonomy IDs.
var categoryIDs = map[model.Category][]string{
	model.CategoryGrocery:    {"17069", "19014", "13000"},
	model.CategoryPharmacy:   {"17102", "19016"},
	model.CategoryRestaurant: {"13065", "13066", "13068"},
	model.CategoryCafe:       {"13032", "13033"},
	model.CategoryBank:       {"10019", "10020"},
	model.CategoryGasStation: {"17110", "19022"},
	model.CategoryShopping:   {"17000", "17001"},
	model.CategoryGym:        {"18021", "18077"},
}

// defaultCategoryIDs is used for labels outside the enumeration.
var defaultCategoryIDs = []string{"17000"}

// querySynonyms rewrites task types into terms the search ranks better.
var querySynonyms = map[string]string{
	"lunch":            "restaurant",
	"dinner":           "restaurant",
	"ATM visit":        "ATM",
	"grocery shopping": "supermarket",
	"coffee break":     "cafe",
	"tea break":        "cafe",
}
