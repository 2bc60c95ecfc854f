package employee

import "context"

// EmployeeService defines business logic for the employee registry.
type EmployeeService interface {
	// List returns all active employees.
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Create registers an employee, stores the optional photo and
	// generates the badge QR code.
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Update edits master data; the QR code is regenerated only when
	// the DNI changes.
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Delete soft-deletes an employee.
	Delete(ctx context.Context, id int64) error

	// MonthlyStats computes the current-month payroll aggregate for one
	// employee using the formula matching its type.
	MonthlyStats(ctx context.Context, id int64) (MonthlyStatsResponse, error)
}
