package usecase

import (
	"time"

	"errand-planner/internal/errand"
	"errand-planner/internal/errand/repository"
	"errand-planner/internal/extractor"
	"errand-planner/internal/optimizer"
	"errand-planner/internal/resolver"
	"errand-planner/pkg/gcalendar"
	"errand-planner/pkg/log"
)

// Config tunes the planning pipeline.
type Config struct {
	ParallelResolve bool
	MaxConcurrency  int

	// Calendar block, used only when a calendar client is supplied.
	CalendarID string
	Timezone   string
}

type implUseCase struct {
	l         log.Logger
	extractor extractor.Extractor
	resolver  resolver.Resolver
	optimizer optimizer.Optimizer
	repo      repository.Repository
	calendar  gcalendar.ICalendar
	cfg       Config
	now       func() time.Time
}

// New creates the errand UseCase. calendar may be nil.
func New(
	l log.Logger,
	ext extractor.Extractor,
	res resolver.Resolver,
	opt optimizer.Optimizer,
	repo repository.Repository,
	calendar gcalendar.ICalendar,
	cfg Config,
) *implUseCase {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = DefaultCalendarID
	}
	return &implUseCase{
		l:         l,
		extractor: ext,
		resolver:  res,
		optimizer: opt,
		repo:      repo,
		calendar:  calendar,
		cfg:       cfg,
		now:       time.Now,
	}
}

var _ errand.UseCase = (*implUseCase)(nil)
