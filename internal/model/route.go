package model

// Route strategies recorded on OptimizedRoute.
const (
	StrategyDirections   = "directions"
	StrategyDistanceSort = "distance_sort"
)

// OptimizedRoute is the ordered multi-stop trip produced for one request.
type OptimizedRoute struct {
	Places        []Place `json:"places"`
	TotalDistance float64 `json:"totalDistance"` // meters
	TotalTime     int     `json:"totalTime"`     // minutes
	Polyline      string  `json:"polyline,omitempty"`
	Strategy      string  `json:"strategy"`
}
