package model

import "time"

// HistoryEntry records one successful planning run.
type HistoryEntry struct {
	ID            string    `json:"id"`
	TaskInput     string    `json:"taskInput"`
	PlacesCount   int       `json:"placesCount"`
	TotalDistance float64   `json:"totalDistance"`
	Date          time.Time `json:"date"`
	Completed     bool      `json:"completed"`
}
