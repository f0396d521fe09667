package gcalendar

import "context"

// ICalendar creates calendar events.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}

var _ ICalendar = (*Client)(nil)
