package repository

// ListHistoryOptions holds filter parameters for listing history.
// A nil Completed lists every entry.
type ListHistoryOptions struct {
	Completed *bool
	Limit     int
}
