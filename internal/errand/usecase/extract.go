package usecase

import (
	"context"

	"errand-planner/internal/errand"
)

// Extract runs task extraction alone, without location lookups.
func (uc *implUseCase) Extract(ctx context.Context, input errand.ExtractInput) (errand.ExtractOutput, error) {
	return errand.ExtractOutput{Parsed: uc.extractor.Extract(ctx, input.TaskInput)}, nil
}
