package attendance

import (
	"context"
	"time"
)

// ExitUpdate carries everything written in the single clock-out
// mutation: the exit timestamp, the captured inputs and the derived
// monetary fields. The update either commits whole or not at all.
type ExitUpdate struct {
	ExitTime   time.Time
	HoursExtra float64
	Despalillo float64
	Escogida   float64
	Monado     float64

	TDespalillo float64
	TEscogida   float64
	TMonado     float64
	PropSabado  float64
	SeptimoDia  float64
}

// AttendanceRepository defines data access for attendance records. The
// one-record-per-(employee, day) invariant is backed by a unique index
// on (employee_id, date); Insert surfaces that violation as
// ErrDuplicateDay so concurrent entries cannot slip through the
// check-then-insert window.
type AttendanceRepository interface {
	// GetByEmployeeAndDate returns the day's record, open or completed,
	// or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Record, error)

	// Insert creates an active record (exit_time null).
	Insert(ctx context.Context, employeeID int64, date time.Time, entryTime time.Time) (Record, error)

	// GetOpenByEmployeeAndDate returns the day's record only if it is
	// still open, or nil.
	GetOpenByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Record, error)

	// CompleteExit sets exit_time and the derived fields in one guarded
	// update (`WHERE exit_time IS NULL`). A concurrent exit that got
	// there first makes this return ErrNoOpenSession.
	CompleteExit(ctx context.Context, recordID int64, update ExitUpdate) error

	// ListByDate returns the day's records joined with employee
	// identity, newest entry first.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)

	// ListRangeJoined returns completed and open records in the
	// inclusive date range, joined with employee type and salary,
	// ordered by employee name then date.
	ListRangeJoined(ctx context.Context, start, end time.Time) ([]Record, error)
}
