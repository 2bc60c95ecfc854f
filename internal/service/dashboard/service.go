package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/gjd78/planilla-backend/internal/domain/dashboard"
	"github.com/gjd78/planilla-backend/internal/domain/report"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	reportService report.ReportService
	location      *time.Location
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	reportService report.ReportService,
	location *time.Location,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashboardRepo,
		reportService:       reportService,
		location:            location,
	}
}

// Stats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Stats(ctx context.Context) (dashboard.Stats, error) {
	now := time.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	hc, err := s.DashboardRepository.CountActiveEmployees(ctx)
	if err != nil {
		return dashboard.Stats{}, err
	}

	act, err := s.DashboardRepository.CountDayActivity(ctx, today)
	if err != nil {
		return dashboard.Stats{}, err
	}

	weekStart, weekEnd := weekBounds(today)
	weekly, err := s.reportService.Weekly(ctx, report.WeeklyReportRequest{
		Start: weekStart.Format("2006-01-02"),
		End:   weekEnd.Format("2006-01-02"),
	})
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("failed to compute week payroll: %w", err)
	}

	return dashboard.Stats{
		TotalEmployees:      hc.Total,
		ProductionEmployees: hc.Production,
		AlDiaEmployees:      hc.AlDia,
		PresentToday:        act.Present,
		CompletedToday:      act.Completed,
		WeekPayroll:         weekly.Summary.TotalPayroll,
	}, nil
}

// weekBounds returns the Monday..Sunday window containing the day.
func weekBounds(day time.Time) (time.Time, time.Time) {
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}
