package dashboard

import (
	"context"
	"time"
)

// HeadCount breaks active employees down by compensation model.
type HeadCount struct {
	Total      int
	Production int
	AlDia      int
}

// DayActivity counts today's attendance records by state.
type DayActivity struct {
	Present   int
	Completed int
}

type DashboardRepository interface {
	CountActiveEmployees(ctx context.Context) (HeadCount, error)
	CountDayActivity(ctx context.Context, date time.Time) (DayActivity, error)
}
