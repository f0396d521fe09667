package http

import (
	"github.com/microcosm-cc/bluemonday"

	"errand-planner/internal/errand"
	"errand-planner/pkg/log"
)

type handler struct {
	l         log.Logger
	uc        errand.UseCase
	sanitizer *bluemonday.Policy
}

// New creates a new HTTP handler for the errand domain.
func New(l log.Logger, uc errand.UseCase) *handler {
	return &handler{
		l:         l,
		uc:        uc,
		sanitizer: bluemonday.StrictPolicy(),
	}
}
