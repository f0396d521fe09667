package model

// Extraction sources recorded on ParsedTask.
const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"
)

// TaskItem is a single errand extracted from the user's sentence.
// Category is whatever the extractor produced; consumers normalize it.
type TaskItem struct {
	Type        string `json:"type"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// ParsedTask is the extractor output for one planning request.
type ParsedTask struct {
	Original string     `json:"original"`
	Tasks    []TaskItem `json:"tasks"`
	Source   string     `json:"source"`
}
