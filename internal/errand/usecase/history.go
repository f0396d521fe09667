package usecase

import (
	"context"

	"errand-planner/internal/errand"
	repo "errand-planner/internal/errand/repository"
)

// ListHistory returns planning history newest first.
func (uc *implUseCase) ListHistory(ctx context.Context, input errand.ListHistoryInput) (errand.ListHistoryOutput, error) {
	opt, err := historyOptions(input.Filter)
	if err != nil {
		return errand.ListHistoryOutput{}, err
	}

	entries, err := uc.repo.ListHistory(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListHistory: %v", err)
		return errand.ListHistoryOutput{}, err
	}

	return errand.ListHistoryOutput{Entries: entries}, nil
}

// ToggleHistory flips the completed flag of one entry.
func (uc *implUseCase) ToggleHistory(ctx context.Context, id string) (errand.ToggleHistoryOutput, error) {
	entry, err := uc.repo.ToggleHistory(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleHistory: %v", err)
		return errand.ToggleHistoryOutput{}, err
	}
	if entry.ID == "" {
		return errand.ToggleHistoryOutput{}, errand.ErrHistoryNotFound
	}

	return errand.ToggleHistoryOutput{Entry: entry}, nil
}

// ClearHistory removes every history entry.
func (uc *implUseCase) ClearHistory(ctx context.Context) error {
	if err := uc.repo.ClearHistory(ctx); err != nil {
		uc.l.Errorf(ctx, "uc.ClearHistory: %v", err)
		return err
	}
	return nil
}

func historyOptions(filter string) (repo.ListHistoryOptions, error) {
	var completed bool
	switch filter {
	case "", errand.FilterAll:
		return repo.ListHistoryOptions{}, nil
	case errand.FilterCompleted:
		completed = true
	case errand.FilterPending:
		completed = false
	default:
		return repo.ListHistoryOptions{}, errand.ErrInvalidFilter
	}
	return repo.ListHistoryOptions{Completed: &completed}, nil
}
