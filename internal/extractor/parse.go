package extractor

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"errand-planner/internal/model"
)

var (
	ErrNoTasksObject = errors.New(ReasonNoJSON)
	ErrInvalidTasks  = errors.New(ReasonInvalidJSON)
	ErrEmptyTasks    = errors.New(ReasonNoTasks)
)

var tasksObjectStart = regexp.MustCompile(`\{\s*"tasks"\s*:`)

// ParseTasks pulls the tasks object out of a model response. The object
// starts at the first {"tasks": and ends at the last closing brace, so
// prose or code fences around it are ignored.
func ParseTasks(content string) ([]model.TaskItem, error) {
	loc := tasksObjectStart.FindStringIndex(content)
	if loc == nil {
		return nil, ErrNoTasksObject
	}
	end := strings.LastIndex(content, "}")
	if end < loc[0] {
		return nil, ErrNoTasksObject
	}

	var payload struct {
		Tasks []map[string]any `json:"tasks"`
	}
	if err := json.Unmarshal([]byte(content[loc[0]:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTasks, err)
	}
	if len(payload.Tasks) == 0 {
		return nil, ErrEmptyTasks
	}

	tasks := make([]model.TaskItem, 0, len(payload.Tasks))
	for i, raw := range payload.Tasks {
		taskType, okType := raw["type"].(string)
		category, okCategory := raw["category"].(string)
		description, okDescription := raw["description"].(string)
		if !okType || !okCategory || !okDescription {
			return nil, fmt.Errorf("%w: task %d must have string type, category and description", ErrInvalidTasks, i)
		}
		tasks = append(tasks, model.TaskItem{
			Type:        taskType,
			Category:    category,
			Description: description,
		})
	}

	return tasks, nil
}
