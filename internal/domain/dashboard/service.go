package dashboard

import "context"

type DashboardService interface {
	// Stats builds the landing-page counters for the current day and
	// the week containing it.
	Stats(ctx context.Context) (Stats, error)
}
