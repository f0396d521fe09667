package foursquare

import "time"

const (
	// DefaultBaseURL is the Foursquare Places API host
	DefaultBaseURL = "https://places-api.foursquare.com"

	// APIVersion is sent in the X-Places-Api-Version header
	APIVersion = "2025-06-17"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	// SortDistance orders results nearest first
	SortDistance = "DISTANCE"

	searchPath = "/places/search"
)
