package directions

import "time"

const (
	// DefaultBaseURL is the Google Maps API host
	DefaultBaseURL = "https://maps.googleapis.com/maps/api"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	// StatusOK is the top-level status of a successful response
	StatusOK = "OK"

	directionsPath = "/directions/json"
)
