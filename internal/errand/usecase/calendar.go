package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"errand-planner/internal/model"
	"errand-planner/pkg/gcalendar"
)

// blockCalendar reserves the trip duration in the user's calendar and
// returns the event link. Failures are logged and yield "".
func (uc *implUseCase) blockCalendar(ctx context.Context, route model.OptimizedRoute) string {
	if uc.calendar == nil {
		return ""
	}

	minutes := route.TotalTime
	if minutes < 1 {
		minutes = 1
	}
	start := uc.now()
	ev, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     fmt.Sprintf(calendarSummary, len(route.Places)),
		Description: describeStops(route.Places),
		Location:    route.Places[0].Address,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(minutes) * time.Minute),
		Timezone:    uc.cfg.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Plan CreateEvent: %v", err)
		return ""
	}
	return ev.HtmlLink
}

func describeStops(places []model.Place) string {
	var b strings.Builder
	for i, p := range places {
		fmt.Fprintf(&b, "%d. %s", i+1, p.Name)
		if p.Address != "" {
			fmt.Fprintf(&b, " (%s)", p.Address)
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
