package extractor

import (
	"context"

	"errand-planner/internal/model"
	"errand-planner/pkg/llmprovider"
)

// Extractor turns a free-form errand sentence into categorized tasks.
type Extractor interface {
	// Extract never fails: when the language model cannot produce a valid
	// task list the keyword fallback runs instead.
	Extract(ctx context.Context, taskInput string) model.ParsedTask
}

// Generator is the language model surface the extractor needs.
// *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// keywordRule maps keyword substrings to one task type.
type keywordRule struct {
	keywords []string
	taskType string
	category model.Category
}
