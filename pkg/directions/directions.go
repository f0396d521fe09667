package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// newDirectionsImpl creates a new Directions implementation
func newDirectionsImpl(cfg Config) *directionsImpl {
	return &directionsImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// OptimizeRoundTrip requests an optimized round trip through waypoints
func (d *directionsImpl) OptimizeRoundTrip(ctx context.Context, origin LatLng, waypoints []LatLng) (*Route, error) {
	endpoint := d.baseURL + directionsPath + "?" + d.buildQuery(origin, waypoints).Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("directions: failed to create request: %w", err)
	}

	resp, err := d.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("directions: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("directions: API error %d: %s", resp.StatusCode, string(body))
	}

	var result directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("directions: failed to decode response: %w", err)
	}

	if result.Status != StatusOK {
		return nil, &StatusError{Status: result.Status, ErrorMessage: result.ErrorMessage}
	}
	if len(result.Routes) == 0 {
		return nil, ErrNoRoutes
	}

	return transformRoute(result.Routes[0]), nil
}

func (d *directionsImpl) buildQuery(origin LatLng, waypoints []LatLng) url.Values {
	points := make([]string, 0, len(waypoints)+1)
	points = append(points, "optimize:true")
	for _, wp := range waypoints {
		points = append(points, formatLatLng(wp))
	}

	q := url.Values{}
	q.Set("origin", formatLatLng(origin))
	q.Set("destination", formatLatLng(origin))
	q.Set("waypoints", strings.Join(points, "|"))
	q.Set("key", d.apiKey)
	return q
}

func transformRoute(r wireRoute) *Route {
	route := &Route{
		WaypointOrder:    r.WaypointOrder,
		Legs:             make([]Leg, len(r.Legs)),
		OverviewPolyline: r.OverviewPolyline.Points,
	}
	for i, leg := range r.Legs {
		route.Legs[i] = Leg{
			DistanceMeters:  leg.Distance.Value,
			DurationSeconds: leg.Duration.Value,
		}
	}
	return route
}

func formatLatLng(p LatLng) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}
