package repository

import (
	"context"
	"encoding/json"
	"strconv"

	"errand-planner/internal/model"
)

// PrependHistory inserts entry at the head of the history list and returns
// it as stored. A numeric ID that does not exceed the head's ID is bumped to
// head+1 so IDs stay unique and increasing.
func (r *implRepository) PrependHistory(ctx context.Context, entry model.HistoryEntry) (model.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.loadHistory(ctx)
	if err != nil {
		return model.HistoryEntry{}, err
	}

	if len(entries) > 0 {
		entry.ID = nextID(entry.ID, entries[0].ID)
	}

	entries = append([]model.HistoryEntry{entry}, entries...)
	if err := r.saveHistory(ctx, entries); err != nil {
		return model.HistoryEntry{}, err
	}
	return entry, nil
}

// nextID returns id, or head+1 when both are numeric and id <= head.
func nextID(id, head string) string {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return id
	}
	h, err := strconv.ParseInt(head, 10, 64)
	if err != nil || n > h {
		return id
	}
	return strconv.FormatInt(h+1, 10)
}

// ListHistory returns history newest first, filtered by completion.
func (r *implRepository) ListHistory(ctx context.Context, opt ListHistoryOptions) ([]model.HistoryEntry, error) {
	r.mu.Lock()
	entries, err := r.loadHistory(ctx)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	filtered := make([]model.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if opt.Completed != nil && e.Completed != *opt.Completed {
			continue
		}
		filtered = append(filtered, e)
		if opt.Limit > 0 && len(filtered) == opt.Limit {
			break
		}
	}
	return filtered, nil
}

// ToggleHistory flips the Completed flag of the entry with id.
func (r *implRepository) ToggleHistory(ctx context.Context, id string) (model.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.loadHistory(ctx)
	if err != nil {
		return model.HistoryEntry{}, err
	}

	for i := range entries {
		if entries[i].ID != id {
			continue
		}
		entries[i].Completed = !entries[i].Completed
		if err := r.saveHistory(ctx, entries); err != nil {
			return model.HistoryEntry{}, err
		}
		return entries[i], nil
	}

	return model.HistoryEntry{}, nil // not found → zero value, no error
}

// ClearHistory removes every history entry.
func (r *implRepository) ClearHistory(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(ctx, KeyHistory); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("ClearHistory"), err)
		return ErrFailedToDelete
	}
	return nil
}

func (r *implRepository) loadHistory(ctx context.Context) ([]model.HistoryEntry, error) {
	raw, ok, err := r.store.Get(ctx, KeyHistory)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("loadHistory"), err)
		return nil, ErrFailedToGet
	}
	if !ok {
		return nil, nil
	}

	var entries []model.HistoryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		r.l.Errorf(ctx, "%s unmarshal: %v", r.scope("loadHistory"), err)
		return nil, ErrCorruptRecord
	}
	return entries, nil
}

func (r *implRepository) saveHistory(ctx context.Context, entries []model.HistoryEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.scope("saveHistory"), err)
		return ErrFailedToSave
	}
	if err := r.store.Set(ctx, KeyHistory, raw); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.scope("saveHistory"), err)
		return ErrFailedToSave
	}
	return nil
}
