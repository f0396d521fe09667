package errand

import (
	"errand-planner/internal/model"
	"errand-planner/pkg/polyline"
)

// History filters
const (
	FilterAll       = "all"
	FilterCompleted = "completed"
	FilterPending   = "pending"
)

// --- UseCase Inputs ---

// PlanInput is one planning request. Origin is the user's current position.
type PlanInput struct {
	TaskInput string
	Origin    *model.Coordinate
}

type ExtractInput struct {
	TaskInput string
}

type ListHistoryInput struct {
	Filter string
}

// --- UseCase Outputs ---

// PlanOutput carries the extracted tasks and resolved places. Route is nil
// when no task resolved to a place.
type PlanOutput struct {
	Parsed model.ParsedTask
	Places []model.Place
	Route  *model.OptimizedRoute
	// CalendarEventLink is set when the trip was blocked in the calendar.
	CalendarEventLink string
}

type ExtractOutput struct {
	Parsed model.ParsedTask
}

type ListHistoryOutput struct {
	Entries []model.HistoryEntry
}

type ToggleHistoryOutput struct {
	Entry model.HistoryEntry
}

// LatestRouteOutput carries the stored route and its decoded polyline.
type LatestRouteOutput struct {
	Route  model.OptimizedRoute
	Points []polyline.Point
}

type DecodeLatestPolylineOutput struct {
	Points []polyline.Point
}
