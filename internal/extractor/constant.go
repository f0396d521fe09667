package extractor

// Log prefixes
const (
	LogPrefixExtract = "internal.extractor.Extract"
)

// Extraction prompts
const (
	PromptSystem = `You are a JSON API. Only output valid JSON. Do not include any text, explanation, or formatting outside the JSON object. If you cannot answer, return {"tasks":[]}.`

	PromptCategorize = `You are an errand planning assistant. Parse the following user input and extract individual tasks, categorizing each one.

User input: "%s"

For each task, determine:
1. type: A short descriptive name for the task
2. category: One of these categories: %s
3. description: A brief description of what needs to be done

Respond with a JSON object in this format:
{
  "tasks": [
    {
      "type": "grocery shopping",
      "category": "grocery",
      "description": "Buy groceries and food items"
    }
  ]
}

Categories mapping:
- grocery: supermarkets, grocery stores, food shopping
- pharmacy: pharmacies, medicine, prescriptions, drugstores
- restaurant: restaurants, dining, meals, lunch, dinner
- cafe: coffee shops, cafes, tea, beverages
- bank: banks, ATMs, financial services
- gas_station: gas stations, fuel, petrol
- shopping: retail stores, shopping malls, general shopping
- gym: gyms, fitness centers, workout, exercise, fitness

If the input is unclear or doesn't match any category, default to "shopping".`
)

// Extraction configuration
const (
	ExtractTemperature = 0.3
	ExtractMaxTokens   = 1024
)

// Default task emitted when no keyword matches
const (
	DefaultTaskType        = "general shopping"
	DefaultTaskDescription = "Find general shopping location"
)

// Fallback reasons
const (
	ReasonLLMUnavailable = "no language model configured"
	ReasonLLMCallFailed  = "LLM call failed"
	ReasonNoJSON         = "no tasks object in response"
	ReasonInvalidJSON    = "invalid tasks JSON"
	ReasonNoTasks        = "empty task list"
)
