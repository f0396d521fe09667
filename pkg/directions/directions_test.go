package directions_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"errand-planner/pkg/directions"
)

func TestOptimizeRoundTrip(t *testing.T) {
	var gotQuery func(string) string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/directions/json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		q := r.URL.Query()
		gotQuery = q.Get

		switch q.Get("key") {
		case "zero":
			w.Write([]byte(`{"status":"ZERO_RESULTS","routes":[]}`))
			return
		case "empty":
			w.Write([]byte(`{"status":"OK","routes":[]}`))
			return
		case "broken":
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		w.Write([]byte(`{
			"status": "OK",
			"routes": [{
				"waypoint_order": [1, 0],
				"overview_polyline": {"points": "_p~iF~ps|U_ulLnnqC"},
				"legs": [
					{"distance": {"value": 1200, "text": "1.2 km"}, "duration": {"value": 300, "text": "5 mins"}},
					{"distance": {"value": 800, "text": "0.8 km"}, "duration": {"value": 200, "text": "3 mins"}},
					{"distance": {"value": 1000, "text": "1 km"}, "duration": {"value": 250, "text": "4 mins"}}
				]
			}]
		}`))
	}))
	defer ts.Close()

	origin := directions.LatLng{Lat: 40.7, Lng: -74}
	waypoints := []directions.LatLng{{Lat: 40.71, Lng: -74.01}, {Lat: 40.72, Lng: -74.02}}

	t.Run("optimized route", func(t *testing.T) {
		client, err := directions.New(directions.Config{APIKey: "maps-key", BaseURL: ts.URL})
		require.NoError(t, err)

		route, err := client.OptimizeRoundTrip(context.Background(), origin, waypoints)
		require.NoError(t, err)

		assert.Equal(t, "40.7,-74", gotQuery("origin"))
		assert.Equal(t, "40.7,-74", gotQuery("destination"))
		assert.Equal(t, "optimize:true|40.71,-74.01|40.72,-74.02", gotQuery("waypoints"))

		assert.Equal(t, []int{1, 0}, route.WaypointOrder)
		assert.Equal(t, 3000, route.TotalDistance())
		assert.Equal(t, 750, route.TotalDuration())
		assert.Equal(t, "_p~iF~ps|U_ulLnnqC", route.OverviewPolyline)
	})

	t.Run("non-OK status", func(t *testing.T) {
		client, _ := directions.New(directions.Config{APIKey: "zero", BaseURL: ts.URL})
		_, err := client.OptimizeRoundTrip(context.Background(), origin, waypoints)

		var statusErr *directions.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, "ZERO_RESULTS", statusErr.Status)
	})

	t.Run("OK without routes", func(t *testing.T) {
		client, _ := directions.New(directions.Config{APIKey: "empty", BaseURL: ts.URL})
		_, err := client.OptimizeRoundTrip(context.Background(), origin, waypoints)
		assert.ErrorIs(t, err, directions.ErrNoRoutes)
	})

	t.Run("http error", func(t *testing.T) {
		client, _ := directions.New(directions.Config{APIKey: "broken", BaseURL: ts.URL})
		_, err := client.OptimizeRoundTrip(context.Background(), origin, waypoints)
		assert.Error(t, err)
	})
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := directions.New(directions.Config{})
	assert.Error(t, err)
}
