package postgresql

import (
	"context"
	"fmt"

	"github.com/gjd78/planilla-backend/internal/pkg/database"
)

// MaintenanceRepository backs the dev-only reset endpoint. It is never
// wired when the app runs in production mode.
type MaintenanceRepository interface {
	// ResetAttendance deletes every attendance record and returns the
	// number of rows removed. Employees and users are untouched.
	ResetAttendance(ctx context.Context) (int64, error)

	// TableCounts returns the row count per core table, used to confirm
	// the state after a reset.
	TableCounts(ctx context.Context) (map[string]int64, error)
}

type maintenanceRepository struct {
	db *database.DB
}

func NewMaintenanceRepository(db *database.DB) MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

func (r *maintenanceRepository) ResetAttendance(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance`)
	if err != nil {
		return 0, fmt.Errorf("failed to reset attendance: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *maintenanceRepository) TableCounts(ctx context.Context) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	counts := make(map[string]int64)
	for _, table := range []string{"employees", "users", "attendance"} {
		var n int64
		if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = n
	}

	return counts, nil
}
