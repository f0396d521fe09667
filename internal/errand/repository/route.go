package repository

import (
	"context"
	"encoding/json"

	"errand-planner/internal/model"
)

// SaveLatestRoute replaces the stored latest route.
func (r *implRepository) SaveLatestRoute(ctx context.Context, route model.OptimizedRoute) error {
	raw, err := json.Marshal(route)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.scope("SaveLatestRoute"), err)
		return ErrFailedToSave
	}
	if err := r.store.Set(ctx, KeyLatestRoute, raw); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("SaveLatestRoute"), err)
		return ErrFailedToSave
	}
	return nil
}

// GetLatestRoute returns the stored latest route.
func (r *implRepository) GetLatestRoute(ctx context.Context) (model.OptimizedRoute, bool, error) {
	raw, ok, err := r.store.Get(ctx, KeyLatestRoute)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("GetLatestRoute"), err)
		return model.OptimizedRoute{}, false, ErrFailedToGet
	}
	if !ok {
		return model.OptimizedRoute{}, false, nil
	}

	var route model.OptimizedRoute
	if err := json.Unmarshal(raw, &route); err != nil {
		r.l.Errorf(ctx, "%s unmarshal: %v", r.scope("GetLatestRoute"), err)
		return model.OptimizedRoute{}, false, ErrCorruptRecord
	}
	return route, true, nil
}
