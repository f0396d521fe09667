package extractor

import (
	"context"
	"fmt"
	"strings"

	"errand-planner/internal/model"
	"errand-planner/pkg/llmprovider"
)

// Extract parses taskInput into tasks. It never returns an empty task list.
func (e *TaskExtractor) Extract(ctx context.Context, taskInput string) model.ParsedTask {
	if e.llm == nil {
		e.l.Debugf(ctx, "%s: %s, using keyword fallback", LogPrefixExtract, ReasonLLMUnavailable)
		return FallbackParse(taskInput)
	}

	resp, err := e.llm.GenerateContent(ctx, e.buildRequest(taskInput))
	if err != nil {
		e.l.Warnf(ctx, "%s: %s: %v", LogPrefixExtract, ReasonLLMCallFailed, err)
		return FallbackParse(taskInput)
	}

	tasks, err := ParseTasks(resp.Content)
	if err != nil {
		e.l.Warnf(ctx, "%s: %v, using keyword fallback", LogPrefixExtract, err)
		return FallbackParse(taskInput)
	}

	e.l.Infof(ctx, "%s: extracted %d task(s) via %s", LogPrefixExtract, len(tasks), resp.ProviderName)
	return model.ParsedTask{
		Original: taskInput,
		Tasks:    tasks,
		Source:   model.SourceLLM,
	}
}

func (e *TaskExtractor) buildRequest(taskInput string) *llmprovider.Request {
	return &llmprovider.Request{
		SystemInstruction: PromptSystem,
		Messages: []llmprovider.Message{
			{Role: "user", Content: BuildPrompt(taskInput)},
		},
		Temperature: ExtractTemperature,
		MaxTokens:   ExtractMaxTokens,
		JSONMode:    true,
	}
}

// BuildPrompt renders the categorization prompt for taskInput.
func BuildPrompt(taskInput string) string {
	names := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		names[i] = string(c)
	}
	return fmt.Sprintf(PromptCategorize, taskInput, strings.Join(names, ", "))
}
