package postgresql

import (
	"context"
	"fmt"

	"github.com/gjd78/planilla-backend/internal/domain/employee"
	"github.com/gjd78/planilla-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, dni, name, employee_type, monthly_salary, photo_url, qr_code_url, is_active, created_at, updated_at`

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE is_active = true
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}

// GetActiveByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetActiveByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1 AND is_active = true
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// ExistsActiveDNI implements employee.EmployeeRepository.
func (r *employeeRepository) ExistsActiveDNI(ctx context.Context, dni string, excludeID *int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE dni = $1 AND is_active = true AND ($2::bigint IS NULL OR id <> $2)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, dni, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check dni: %w", err)
	}

	return exists, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (dni, name, employee_type, monthly_salary, photo_url, qr_code_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, true)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.DNI,
		newEmployee.Name,
		string(newEmployee.Type),
		newEmployee.MonthlySalary,
		newEmployee.PhotoURL,
		newEmployee.QRCodeURL,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	newEmployee.IsActive = true
	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET dni = $2,
			name = $3,
			employee_type = $4,
			monthly_salary = $5,
			photo_url = COALESCE($6, photo_url),
			updated_at = NOW()
		WHERE id = $1 AND is_active = true
	`

	tag, err := q.Exec(ctx, query,
		emp.ID,
		emp.DNI,
		emp.Name,
		string(emp.Type),
		emp.MonthlySalary,
		emp.PhotoURL,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// SetQRCodeURL implements employee.EmployeeRepository.
func (r *employeeRepository) SetQRCodeURL(ctx context.Context, id int64, url string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET qr_code_url = $2, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := q.Exec(ctx, query, id, url); err != nil {
		return fmt.Errorf("failed to set qr code url: %w", err)
	}

	return nil
}

// ClearPhotoURL implements employee.EmployeeRepository.
func (r *employeeRepository) ClearPhotoURL(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET photo_url = NULL, updated_at = NOW()
		WHERE id = $1
	`

	if _, err := q.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to clear photo url: %w", err)
	}

	return nil
}

// SoftDelete implements employee.EmployeeRepository.
func (r *employeeRepository) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET is_active = false, updated_at = NOW()
		WHERE id = $1 AND is_active = true
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// GetMonthlyTotals implements employee.EmployeeRepository.
func (r *employeeRepository) GetMonthlyTotals(ctx context.Context, employeeID int64, year int, month int) (employee.MonthlyTotals, error) {
	q := GetQuerier(ctx, r.db)

	// Month boundary computed in SQL from make_date so February and
	// year rollover behave; the range is [first, first + 1 month).
	query := `
		SELECT COUNT(*) FILTER (WHERE exit_time IS NOT NULL),
			   COALESCE(SUM(despalillo), 0),
			   COALESCE(SUM(escogida), 0),
			   COALESCE(SUM(monado), 0),
			   COALESCE(SUM(t_despalillo), 0),
			   COALESCE(SUM(t_escogida), 0),
			   COALESCE(SUM(t_monado), 0),
			   COALESCE(SUM(hours_extra), 0)
		FROM attendance
		WHERE employee_id = $1
		  AND date >= make_date($2, $3, 1)
		  AND date < make_date($2, $3, 1) + INTERVAL '1 month'
	`

	var totals employee.MonthlyTotals
	err := q.QueryRow(ctx, query, employeeID, year, month).Scan(
		&totals.DaysWorked,
		&totals.Despalillo,
		&totals.Escogida,
		&totals.Monado,
		&totals.TDespalillo,
		&totals.TEscogida,
		&totals.TMonado,
		&totals.HoursExtra,
	)
	if err != nil {
		return employee.MonthlyTotals{}, fmt.Errorf("failed to sum monthly totals: %w", err)
	}

	return totals, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var empType string
	err := row.Scan(
		&emp.ID, &emp.DNI, &emp.Name, &empType, &emp.MonthlySalary,
		&emp.PhotoURL, &emp.QRCodeURL, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	emp.Type = employee.ParseType(empType)
	return emp, nil
}
