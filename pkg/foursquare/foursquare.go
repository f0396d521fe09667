package foursquare

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

// newFoursquareImpl creates a new Foursquare implementation
func newFoursquareImpl(cfg Config) *foursquareImpl {
	return &foursquareImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// SearchPlaces runs one /places/search query
func (f *foursquareImpl) SearchPlaces(ctx context.Context, req SearchRequest) ([]Place, error) {
	endpoint := f.baseURL + searchPath + "?" + buildQuery(req).Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("foursquare: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+f.apiKey)
	httpReq.Header.Set("X-Places-Api-Version", APIVersion)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("foursquare: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("foursquare: API error %d: %s", resp.StatusCode, string(body))
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("foursquare: failed to decode response: %w", err)
	}

	return decodePlaces(result.Results), nil
}

// decodePlaces skips results that do not fit Place, such as a latitude sent
// as a string.
func decodePlaces(raw []json.RawMessage) []Place {
	places := make([]Place, 0, len(raw))
	for _, r := range raw {
		var p Place
		if err := json.Unmarshal(r, &p); err != nil {
			continue
		}
		places = append(places, p)
	}
	return places
}

func buildQuery(req SearchRequest) url.Values {
	q := url.Values{}
	q.Set("ll", formatCoord(req.Latitude)+","+formatCoord(req.Longitude))
	if req.Radius > 0 {
		q.Set("radius", strconv.Itoa(req.Radius))
	}
	if len(req.Categories) > 0 {
		q.Set("categories", strings.Join(req.Categories, ","))
	}
	if req.Query != "" {
		q.Set("query", req.Query)
	}
	if req.Limit > 0 {
		q.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Sort != "" {
		q.Set("sort", req.Sort)
	}
	return q
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
