package errand

import "errors"

var (
	ErrMissingLocation = errors.New("location is required to plan errands")
	ErrHistoryNotFound = errors.New("history entry not found")
	ErrNoLatestRoute   = errors.New("no route has been planned yet")
	ErrInvalidFilter   = errors.New("invalid history filter")
)
