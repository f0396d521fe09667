package extractor

import (
	"errand-planner/pkg/log"
)

// TaskExtractor extracts tasks with a language model and falls back to
// keyword matching.
type TaskExtractor struct {
	llm Generator
	l   log.Logger
}

// Ensure TaskExtractor implements Extractor interface
var _ Extractor = (*TaskExtractor)(nil)

// New creates a new TaskExtractor. A nil llm makes every call use the keyword fallback.
func New(llm Generator, l log.Logger) *TaskExtractor {
	return &TaskExtractor{
		llm: llm,
		l:   l,
	}
}
