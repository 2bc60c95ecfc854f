package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gjd78/planilla-backend/internal/domain/dashboard"
	"github.com/gjd78/planilla-backend/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// CountActiveEmployees implements dashboard.DashboardRepository. The
// type match mirrors the normalization applied at the data-model
// boundary so legacy spellings still land in the right bucket.
func (r *dashboardRepository) CountActiveEmployees(ctx context.Context) (dashboard.HeadCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE LOWER(employee_type) IN ('producción', 'produccion', 'production')),
			   COUNT(*) FILTER (WHERE LOWER(employee_type) IN ('al día', 'al dia', 'aldia', 'al_dia'))
		FROM employees
		WHERE is_active = true
	`

	var hc dashboard.HeadCount
	if err := q.QueryRow(ctx, query).Scan(&hc.Total, &hc.Production, &hc.AlDia); err != nil {
		return dashboard.HeadCount{}, fmt.Errorf("failed to count employees: %w", err)
	}

	return hc, nil
}

// CountDayActivity implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountDayActivity(ctx context.Context, date time.Time) (dashboard.DayActivity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE exit_time IS NOT NULL)
		FROM attendance
		WHERE date = $1
	`

	var act dashboard.DayActivity
	if err := q.QueryRow(ctx, query, date).Scan(&act.Present, &act.Completed); err != nil {
		return dashboard.DayActivity{}, fmt.Errorf("failed to count day activity: %w", err)
	}

	return act, nil
}
