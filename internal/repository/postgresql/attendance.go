package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gjd78/planilla-backend/internal/domain/attendance"
	"github.com/gjd78/planilla-backend/internal/domain/employee"
	"github.com/gjd78/planilla-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceJoinedColumns = `
	a.id, a.employee_id, a.date, a.entry_time, a.exit_time,
	a.hours_extra, a.despalillo, a.escogida, a.monado,
	a.t_despalillo, a.t_escogida, a.t_monado, a.prop_sabado, a.septimo_dia,
	a.created_at,
	e.name, e.dni, e.employee_type, e.monthly_salary, e.photo_url`

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceJoinedColumns + `
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no record for this day yet
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &rec, nil
}

// Insert implements attendance.AttendanceRepository. The unique index
// on (employee_id, date) turns a concurrent double clock-in into a
// 23505, surfaced as ErrDuplicateDay.
func (r *attendanceRepository) Insert(ctx context.Context, employeeID int64, date time.Time, entryTime time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (employee_id, date, entry_time)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	rec := attendance.Record{
		EmployeeID: employeeID,
		Date:       date,
		EntryTime:  entryTime,
	}
	err := q.QueryRow(ctx, query, employeeID, date, entryTime).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrDuplicateDay
		}
		return attendance.Record{}, fmt.Errorf("failed to insert attendance: %w", err)
	}

	return rec, nil
}

// GetOpenByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetOpenByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceJoinedColumns + `
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1 AND a.date = $2 AND a.exit_time IS NULL
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open attendance: %w", err)
	}

	return &rec, nil
}

// CompleteExit implements attendance.AttendanceRepository. The
// exit_time IS NULL guard makes the clock-out race-safe: the second
// writer matches zero rows and gets ErrNoOpenSession.
func (r *attendanceRepository) CompleteExit(ctx context.Context, recordID int64, update attendance.ExitUpdate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET exit_time = $2,
			hours_extra = $3,
			despalillo = $4,
			escogida = $5,
			monado = $6,
			t_despalillo = $7,
			t_escogida = $8,
			t_monado = $9,
			prop_sabado = $10,
			septimo_dia = $11
		WHERE id = $1 AND exit_time IS NULL
	`

	tag, err := q.Exec(ctx, query,
		recordID,
		update.ExitTime,
		update.HoursExtra,
		update.Despalillo,
		update.Escogida,
		update.Monado,
		update.TDespalillo,
		update.TEscogida,
		update.TMonado,
		update.PropSabado,
		update.SeptimoDia,
	)
	if err != nil {
		return fmt.Errorf("failed to complete exit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrNoOpenSession
	}

	return nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceJoinedColumns + `
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1 AND e.is_active = true
		ORDER BY a.entry_time DESC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListRangeJoined implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListRangeJoined(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceJoinedColumns + `
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date >= $1 AND a.date <= $2 AND e.is_active = true
		ORDER BY e.name ASC, a.date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance range: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	var empType string
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.EntryTime, &rec.ExitTime,
		&rec.HoursExtra, &rec.Despalillo, &rec.Escogida, &rec.Monado,
		&rec.TDespalillo, &rec.TEscogida, &rec.TMonado, &rec.PropSabado, &rec.SeptimoDia,
		&rec.CreatedAt,
		&rec.EmployeeName, &rec.EmployeeDNI, &empType, &rec.MonthlySalary, &rec.PhotoURL,
	)
	if err != nil {
		return attendance.Record{}, err
	}
	rec.EmployeeType = employee.ParseType(empType)
	return rec, nil
}
