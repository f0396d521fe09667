package extractor

import (
	"strings"

	"errand-planner/internal/model"
)

// keywordRules is scanned in order; the order fixes the output order.
var keywordRules = []keywordRule{
	{keywords: []string{"grocery", "groceries", "food"}, taskType: "grocery shopping", category: model.CategoryGrocery},
	{keywords: []string{"medicine", "prescription", "pharmacy", "meds"}, taskType: "pharmacy visit", category: model.CategoryPharmacy},
	{keywords: []string{"coffee"}, taskType: "coffee break", category: model.CategoryCafe},
	{keywords: []string{"tea"}, taskType: "tea break", category: model.CategoryCafe},
	{keywords: []string{"cafe"}, taskType: "cafe visit", category: model.CategoryCafe},
	{keywords: []string{"lunch"}, taskType: "lunch", category: model.CategoryRestaurant},
	{keywords: []string{"dinner"}, taskType: "dinner", category: model.CategoryRestaurant},
	{keywords: []string{"restaurant", "eat"}, taskType: "dining", category: model.CategoryRestaurant},
	{keywords: []string{"bank", "atm"}, taskType: "banking", category: model.CategoryBank},
	{keywords: []string{"gas", "fuel"}, taskType: "fuel up", category: model.CategoryGasStation},
	{keywords: []string{"shop", "shopping", "store"}, taskType: "shopping", category: model.CategoryShopping},
	{keywords: []string{"gym", "workout", "fitness"}, taskType: "workout", category: model.CategoryGym},
}

// FallbackParse maps keyword substrings of taskInput to tasks. It is pure
// and always returns at least one task.
func FallbackParse(taskInput string) model.ParsedTask {
	lower := strings.ToLower(taskInput)

	var tasks []model.TaskItem
	seen := make(map[string]bool)
	for _, rule := range keywordRules {
		if seen[rule.taskType] || !containsAny(lower, rule.keywords) {
			continue
		}
		seen[rule.taskType] = true
		tasks = append(tasks, model.TaskItem{
			Type:        rule.taskType,
			Category:    string(rule.category),
			Description: "Find " + rule.taskType + " location",
		})
	}

	if len(tasks) == 0 {
		tasks = []model.TaskItem{{
			Type:        DefaultTaskType,
			Category:    string(model.CategoryShopping),
			Description: DefaultTaskDescription,
		}}
	}

	return model.ParsedTask{
		Original: taskInput,
		Tasks:    tasks,
		Source:   model.SourceFallback,
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
