package directions

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds Directions client configuration
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("directions: APIKey is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type directionsImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// LatLng is a WGS84 coordinate
type LatLng struct {
	Lat float64
	Lng float64
}

// Route is the first route of a Directions response.
type Route struct {
	WaypointOrder    []int
	Legs             []Leg
	OverviewPolyline string
}

// Leg is one segment between consecutive stops.
type Leg struct {
	DistanceMeters  int
	DurationSeconds int
}

// TotalDistance returns the summed leg distance in meters.
func (r *Route) TotalDistance() int {
	total := 0
	for _, leg := range r.Legs {
		total += leg.DistanceMeters
	}
	return total
}

// TotalDuration returns the summed leg duration in seconds.
func (r *Route) TotalDuration() int {
	total := 0
	for _, leg := range r.Legs {
		total += leg.DurationSeconds
	}
	return total
}

// Wire types
type directionsResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message"`
	Routes       []wireRoute `json:"routes"`
}

type wireRoute struct {
	WaypointOrder    []int        `json:"waypoint_order"`
	Legs             []wireLeg    `json:"legs"`
	OverviewPolyline wirePolyline `json:"overview_polyline"`
}

type wirePolyline struct {
	Points string `json:"points"`
}

type wireLeg struct {
	Distance wireValue `json:"distance"`
	Duration wireValue `json:"duration"`
}

type wireValue struct {
	Value int    `json:"value"`
	Text  string `json:"text"`
}
