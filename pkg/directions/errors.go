package directions

import (
	"errors"
	"fmt"
)

// ErrNoRoutes is returned when an OK response carries no route.
var ErrNoRoutes = errors.New("directions: no routes returned")

// StatusError reports a non-OK top-level status such as ZERO_RESULTS.
type StatusError struct {
	Status       string
	ErrorMessage string
}

func (e *StatusError) Error() string {
	if e.ErrorMessage != "" {
		return fmt.Sprintf("directions: status %s: %s", e.Status, e.ErrorMessage)
	}
	return fmt.Sprintf("directions: status %s", e.Status)
}
