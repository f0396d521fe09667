package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"errand-planner/internal/model"
)

func categoriesOf(parsed model.ParsedTask) []string {
	out := make([]string, len(parsed.Tasks))
	for i, task := range parsed.Tasks {
		out[i] = task.Category
	}
	return out
}

func TestFallbackParse(t *testing.T) {
	t.Run("coffee only yields cafe", func(t *testing.T) {
		parsed := FallbackParse("I need COFFEE")
		require.Len(t, parsed.Tasks, 1)
		assert.Equal(t, model.TaskItem{
			Type:        "coffee break",
			Category:    "cafe",
			Description: "Find coffee break location",
		}, parsed.Tasks[0])
	})

	t.Run("no keyword yields general shopping", func(t *testing.T) {
		for _, input := range []string{"", "   ", "walk the dog", "xyz"} {
			parsed := FallbackParse(input)
			require.Len(t, parsed.Tasks, 1, "input %q", input)
			assert.Equal(t, DefaultTaskType, parsed.Tasks[0].Type)
			assert.Equal(t, "shopping", parsed.Tasks[0].Category)
			assert.Equal(t, DefaultTaskDescription, parsed.Tasks[0].Description)
		}
	})

	t.Run("shopping dinner groceries", func(t *testing.T) {
		parsed := FallbackParse("Go for shopping then dinner then groceries")
		assert.ElementsMatch(t, []string{"shopping", "restaurant", "grocery"}, categoriesOf(parsed))
		assert.Equal(t, []string{"grocery", "restaurant", "shopping"}, categoriesOf(parsed))
	})

	t.Run("keywords of one type produce one task", func(t *testing.T) {
		parsed := FallbackParse("grocery and groceries and food, then medicine and meds")
		require.Len(t, parsed.Tasks, 2)
		assert.Equal(t, "grocery shopping", parsed.Tasks[0].Type)
		assert.Equal(t, "pharmacy visit", parsed.Tasks[1].Type)
	})

	t.Run("distinct types of one category are kept", func(t *testing.T) {
		parsed := FallbackParse("lunch then dinner")
		require.Len(t, parsed.Tasks, 2)
		assert.Equal(t, "lunch", parsed.Tasks[0].Type)
		assert.Equal(t, "dinner", parsed.Tasks[1].Type)
	})

	t.Run("substring matching", func(t *testing.T) {
		// "steak" contains "tea" and "eat"
		parsed := FallbackParse("steak")
		assert.Equal(t, []string{"cafe", "restaurant"}, categoriesOf(parsed))
	})

	t.Run("source and original", func(t *testing.T) {
		parsed := FallbackParse("gym")
		assert.Equal(t, model.SourceFallback, parsed.Source)
		assert.Equal(t, "gym", parsed.Original)
		assert.Equal(t, "gym", parsed.Tasks[0].Category)
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, input := range []string{"coffee and bank", "nothing", "Fuel, ATM, store, workout"} {
			assert.Equal(t, FallbackParse(input), FallbackParse(input))
		}
	})

	t.Run("every category is reachable", func(t *testing.T) {
		parsed := FallbackParse("groceries pharmacy coffee lunch bank gas shop gym")
		seen := map[string]bool{}
		for _, c := range categoriesOf(parsed) {
			seen[c] = true
		}
		for _, c := range model.Categories {
			assert.True(t, seen[string(c)], "category %s", c)
		}
	})
}
