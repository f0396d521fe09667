package http

import (
	"time"

	"errand-planner/internal/errand"
	"errand-planner/internal/model"
	"errand-planner/pkg/polyline"
)

// --- Request DTOs ---

type planReq struct {
	TaskInput string   `json:"task_input"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r planReq) validate() error {
	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		return errInvalidLatitude
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		return errInvalidLongitude
	}
	return nil
}

func (r planReq) toInput() errand.PlanInput {
	input := errand.PlanInput{TaskInput: r.TaskInput}
	if r.Latitude != nil && r.Longitude != nil {
		input.Origin = &model.Coordinate{Latitude: *r.Latitude, Longitude: *r.Longitude}
	}
	return input
}

// ---

type extractReq struct {
	TaskInput string `json:"task_input"`
}

func (r extractReq) validate() error { return nil }

func (r extractReq) toInput() errand.ExtractInput {
	return errand.ExtractInput{TaskInput: r.TaskInput}
}

// ---

type listHistoryReq struct {
	Status string `form:"status"`
}

func (r listHistoryReq) validate() error { return nil }

func (r listHistoryReq) toInput() errand.ListHistoryInput {
	return errand.ListHistoryInput{Filter: r.Status}
}

// --- Response DTOs ---

type parsedResp struct {
	Original string           `json:"original"`
	Tasks    []model.TaskItem `json:"tasks"`
	Source   string           `json:"source"`
}

func newParsedResp(p model.ParsedTask) parsedResp {
	tasks := p.Tasks
	if tasks == nil {
		tasks = []model.TaskItem{}
	}
	return parsedResp{
		Original: p.Original,
		Tasks:    tasks,
		Source:   string(p.Source),
	}
}

type planResp struct {
	Original          string                `json:"original"`
	Tasks             []model.TaskItem      `json:"tasks"`
	Source            string                `json:"source"`
	Places            []model.Place         `json:"places"`
	Route             *model.OptimizedRoute `json:"route,omitempty"`
	CalendarEventLink string                `json:"calendar_event_link,omitempty"`
}

func (h *handler) newPlanResp(out errand.PlanOutput) planResp {
	parsed := newParsedResp(out.Parsed)
	places := out.Places
	if places == nil {
		places = []model.Place{}
	}
	return planResp{
		Original:          parsed.Original,
		Tasks:             parsed.Tasks,
		Source:            parsed.Source,
		Places:            places,
		Route:             out.Route,
		CalendarEventLink: out.CalendarEventLink,
	}
}

func (h *handler) newExtractResp(out errand.ExtractOutput) parsedResp {
	return newParsedResp(out.Parsed)
}

type historyEntryResp struct {
	ID            string    `json:"id"`
	TaskInput     string    `json:"task_input"`
	PlacesCount   int       `json:"places_count"`
	TotalDistance float64   `json:"total_distance"`
	Date          time.Time `json:"date"`
	Completed     bool      `json:"completed"`
}

func newHistoryEntryResp(e model.HistoryEntry) historyEntryResp {
	return historyEntryResp{
		ID:            e.ID,
		TaskInput:     e.TaskInput,
		PlacesCount:   e.PlacesCount,
		TotalDistance: e.TotalDistance,
		Date:          e.Date,
		Completed:     e.Completed,
	}
}

type listHistoryResp struct {
	Entries []historyEntryResp `json:"entries"`
	Total   int                `json:"total"`
}

func (h *handler) newListHistoryResp(out errand.ListHistoryOutput) listHistoryResp {
	entries := make([]historyEntryResp, len(out.Entries))
	for i, e := range out.Entries {
		entries[i] = newHistoryEntryResp(e)
	}
	return listHistoryResp{Entries: entries, Total: len(entries)}
}

type toggleHistoryResp struct {
	Entry historyEntryResp `json:"entry"`
}

func (h *handler) newToggleHistoryResp(out errand.ToggleHistoryOutput) toggleHistoryResp {
	return toggleHistoryResp{Entry: newHistoryEntryResp(out.Entry)}
}

type pointResp struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type latestRouteResp struct {
	Route  model.OptimizedRoute `json:"route"`
	Points []pointResp          `json:"points"`
}

func (h *handler) newLatestRouteResp(out errand.LatestRouteOutput) latestRouteResp {
	return latestRouteResp{Route: out.Route, Points: newPointsResp(out.Points)}
}

type routePointsResp struct {
	Points []pointResp `json:"points"`
}

func (h *handler) newRoutePointsResp(out errand.DecodeLatestPolylineOutput) routePointsResp {
	return routePointsResp{Points: newPointsResp(out.Points)}
}

func newPointsResp(points []polyline.Point) []pointResp {
	out := make([]pointResp, len(points))
	for i, p := range points {
		out[i] = pointResp{Latitude: p.Latitude, Longitude: p.Longitude}
	}
	return out
}
