package usecase

const (
	DefaultMaxConcurrency = 4
	DefaultCalendarID     = "primary"

	calendarSummary = "Errands (%d stops)"
)
