package usecase

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"errand-planner/internal/errand"
	"errand-planner/internal/model"
)

// Plan runs the full pipeline: extract, resolve, optimize, persist.
func (uc *implUseCase) Plan(ctx context.Context, input errand.PlanInput) (errand.PlanOutput, error) {
	if input.Origin == nil {
		return errand.PlanOutput{}, errand.ErrMissingLocation
	}
	origin := *input.Origin

	parsed := uc.extractor.Extract(ctx, input.TaskInput)
	uc.l.Infof(ctx, "uc.Plan: %d tasks via %s", len(parsed.Tasks), parsed.Source)

	places := dedupPlaces(uc.resolveAll(ctx, parsed.Tasks, origin))
	out := errand.PlanOutput{Parsed: parsed, Places: places}
	if len(places) == 0 {
		uc.l.Warnf(ctx, "uc.Plan: no places found for %d tasks", len(parsed.Tasks))
		return out, nil
	}

	route, err := uc.optimizer.Optimize(ctx, places, origin)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Plan Optimize: %v", err)
		return out, err
	}
	out.Route = &route

	uc.persist(ctx, input.TaskInput, route)
	out.CalendarEventLink = uc.blockCalendar(ctx, route)

	return out, nil
}

// resolveAll returns one slot per task, nil where nothing was found.
func (uc *implUseCase) resolveAll(ctx context.Context, tasks []model.TaskItem, origin model.Coordinate) []*model.Place {
	found := make([]*model.Place, len(tasks))

	if !uc.cfg.ParallelResolve {
		for i, task := range tasks {
			found[i] = uc.resolver.Resolve(ctx, task, origin)
		}
		return found
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.cfg.MaxConcurrency)
	for i, task := range tasks {
		g.Go(func() error {
			found[i] = uc.resolver.Resolve(gctx, task, origin)
			return nil
		})
	}
	_ = g.Wait() // Resolve never fails

	return found
}

// dedupPlaces drops nil slots and repeated place IDs, keeping the first.
func dedupPlaces(found []*model.Place) []model.Place {
	seen := make(map[string]struct{}, len(found))
	places := make([]model.Place, 0, len(found))
	for _, p := range found {
		if p == nil {
			continue
		}
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		places = append(places, *p)
	}
	return places
}

func (uc *implUseCase) persist(ctx context.Context, taskInput string, route model.OptimizedRoute) {
	now := uc.now()
	entry := model.HistoryEntry{
		ID:            strconv.FormatInt(now.UnixMilli(), 10),
		TaskInput:     taskInput,
		PlacesCount:   len(route.Places),
		TotalDistance: route.TotalDistance,
		Date:          now,
		Completed:     true,
	}
	if _, err := uc.repo.PrependHistory(ctx, entry); err != nil {
		uc.l.Errorf(ctx, "uc.Plan PrependHistory: %v", err)
	}
	if err := uc.repo.SaveLatestRoute(ctx, route); err != nil {
		uc.l.Errorf(ctx, "uc.Plan SaveLatestRoute: %v", err)
	}
}
