package resolver

import (
	"context"
	"strings"

	"errand-planner/internal/model"
	"errand-planner/pkg/foursquare"
)

// Resolve returns the nearest usable place for task, or nil.
// The primary query filters by taxonomy; if it yields nothing the category
// label is searched without a taxonomy filter.
func (r *PlaceResolver) Resolve(ctx context.Context, task model.TaskItem, origin model.Coordinate) *model.Place {
	if r.places == nil {
		r.l.Warnf(ctx, "%s: places client not configured, task %q unresolved", LogPrefixResolve, task.Type)
		return nil
	}

	category := model.NormalizeCategory(task.Category)

	results := r.search(ctx, foursquare.SearchRequest{
		Latitude:   origin.Latitude,
		Longitude:  origin.Longitude,
		Radius:     r.cfg.Radius,
		Categories: CategoryIDs(task.Category),
		Query:      SearchQuery(task.Type),
		Limit:      r.cfg.Limit,
		Sort:       foursquare.SortDistance,
	})

	if len(results) == 0 {
		r.l.Debugf(ctx, "%s: no results for %q, retrying by category", LogPrefixResolve, task.Type)
		results = r.search(ctx, foursquare.SearchRequest{
			Latitude:  origin.Latitude,
			Longitude: origin.Longitude,
			Radius:    r.cfg.Radius,
			Query:     fallbackQuery(task.Category, category),
			Limit:     r.cfg.Limit,
			Sort:      foursquare.SortDistance,
		})
	}

	if len(results) == 0 {
		r.l.Infof(ctx, "%s: no place found for %q", LogPrefixResolve, task.Type)
		return nil
	}

	place := toPlace(results[0], category, task.Type)
	return &place
}

// search runs one query and keeps only results with coordinates.
// Failures are logged and reported as no results.
func (r *PlaceResolver) search(ctx context.Context, req foursquare.SearchRequest) []foursquare.Place {
	key := cacheKey(req)
	if cached, ok := r.cache.Get(key); ok {
		return cached
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	results, err := r.places.SearchPlaces(ctx, req)
	if err != nil {
		r.l.Warnf(ctx, "%s: search %q failed: %v", LogPrefixResolve, req.Query, err)
		return nil
	}

	usable := make([]foursquare.Place, 0, len(results))
	for _, p := range results {
		if p.HasCoordinates() {
			usable = append(usable, p)
		}
	}

	if len(usable) > 0 {
		r.cache.Add(key, usable)
	}
	return usable
}

// CategoryIDs returns the taxonomy IDs for a raw category label.
func CategoryIDs(rawCategory string) []string {
	if ids, ok := categoryIDs[model.Category(strings.ToLower(strings.TrimSpace(rawCategory)))]; ok {
		return ids
	}
	return defaultCategoryIDs
}

// SearchQuery returns the search term for a task type.
func SearchQuery(taskType string) string {
	if q, ok := querySynonyms[taskType]; ok {
		return q
	}
	return taskType
}

func fallbackQuery(rawCategory string, normalized model.Category) string {
	if q := strings.TrimSpace(rawCategory); q != "" {
		return q
	}
	return string(normalized)
}

func toPlace(p foursquare.Place, category model.Category, taskType string) model.Place {
	hours := HoursNotAvailable
	if p.Hours != nil && p.Hours.Display != "" {
		hours = p.Hours.Display
	}

	return model.Place{
		ID:        p.ID(),
		Name:      p.Name,
		Address:   p.Address(),
		Category:  string(category),
		Distance:  p.Distance,
		Rating:    p.Rating,
		Hours:     hours,
		Phone:     p.Tel,
		Website:   p.Website,
		Latitude:  *p.Latitude,
		Longitude: *p.Longitude,
		TaskType:  taskType,
	}
}
