package report

import (
	"context"
	"time"

	"github.com/gjd78/planilla-backend/internal/domain/attendance"
)

// ReportRepository reads attendance joined with employee master data.
// Reports never write.
type ReportRepository interface {
	// AttendanceInRange returns active employees' records with date in
	// [start, end] inclusive, joined with the employee row, ordered by
	// employee name then date. Soft-deleted employees drop out of
	// reports; their rows stay in the table.
	AttendanceInRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error)
}
