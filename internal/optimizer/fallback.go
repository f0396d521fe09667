package optimizer

import (
	"math"
	"sort"

	"errand-planner/internal/model"
	"errand-planner/pkg/geo"
)

type rankedPlace struct {
	place model.Place
	dist  float64
}

// DistanceSort orders places by great-circle distance from origin, keeping
// input order for ties.
//
// TotalDistance is the sum of each place's distance from the search origin,
// not the length of the path through the stops. TotalTime assumes walking
// at 80 m/min.
func DistanceSort(places []model.Place, origin model.Coordinate) model.OptimizedRoute {
	ranked := make([]rankedPlace, len(places))
	for i, p := range places {
		ranked[i] = rankedPlace{
			place: p,
			dist:  geo.Haversine(origin.Latitude, origin.Longitude, p.Latitude, p.Longitude),
		}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].dist < ranked[b].dist
	})

	ordered := make([]model.Place, len(ranked))
	total := 0.0
	for i, r := range ranked {
		ordered[i] = r.place
		total += r.place.Distance
	}

	return model.OptimizedRoute{
		Places:        ordered,
		TotalDistance: total,
		TotalTime:     int(math.Round(total / WalkingSpeedMetersPerMinute)),
		Strategy:      model.StrategyDistanceSort,
	}
}
