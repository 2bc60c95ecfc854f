package postgresql

import (
	"context"
	"time"

	"github.com/gjd78/planilla-backend/internal/domain/attendance"
	"github.com/gjd78/planilla-backend/internal/domain/report"
	"github.com/gjd78/planilla-backend/internal/pkg/database"
)

type reportRepository struct {
	attendance attendance.AttendanceRepository
}

// NewReportRepository reads through the attendance repository; reports
// add no SQL of their own, only aggregation in the service.
func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{attendance: NewAttendanceRepository(db)}
}

// AttendanceInRange implements report.ReportRepository.
func (r *reportRepository) AttendanceInRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	return r.attendance.ListRangeJoined(ctx, start, end)
}
