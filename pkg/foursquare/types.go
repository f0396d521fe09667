package foursquare

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// Config holds Foursquare client configuration
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("foursquare: APIKey is required")
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

type foursquareImpl struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// SearchRequest is one /places/search query.
// Empty Categories and Query are omitted from the request.
type SearchRequest struct {
	Latitude   float64
	Longitude  float64
	Radius     int
	Categories []string
	Query      string
	Limit      int
	Sort       string
}

// Place is a search result.
type Place struct {
	FsqPlaceID string     `json:"fsq_place_id"`
	FsqID      string     `json:"fsq_id"`
	Name       string     `json:"name"`
	Latitude   *float64   `json:"latitude"`
	Longitude  *float64   `json:"longitude"`
	Location   Location   `json:"location"`
	Categories []Category `json:"categories"`
	Distance   float64    `json:"distance"`
	Rating     float64    `json:"rating"`
	Hours      *Hours     `json:"hours"`
	Tel        string     `json:"tel"`
	Website    string     `json:"website"`
}

// Location is the postal address of a place
type Location struct {
	Address          string `json:"address"`
	Locality         string `json:"locality"`
	FormattedAddress string `json:"formatted_address"`
}

// Category is a Foursquare taxonomy entry
type Category struct {
	FsqCategoryID string `json:"fsq_category_id"`
	Name          string `json:"name"`
}

// Hours holds opening hours
type Hours struct {
	Display string `json:"display"`
}

// ID returns the place identifier, preferring the current fsq_place_id.
func (p Place) ID() string {
	if p.FsqPlaceID != "" {
		return p.FsqPlaceID
	}
	return p.FsqID
}

// HasCoordinates reports whether both latitude and longitude are present.
func (p Place) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil
}

// Address returns the formatted address, or "address locality" when absent.
func (p Place) Address() string {
	if p.Location.FormattedAddress != "" {
		return p.Location.FormattedAddress
	}
	return strings.TrimSpace(p.Location.Address + " " + p.Location.Locality)
}

// Results are decoded one by one so a malformed entry drops only itself.
type searchResponse struct {
	Results []json.RawMessage `json:"results"`
}
