package employee

import "context"

// EmployeeRepository defines data access methods for the employee registry.
type EmployeeRepository interface {
	// ListActive returns active employees, newest first. Inactive
	// employees never appear in listings but keep their history.
	ListActive(ctx context.Context) ([]Employee, error)

	// GetActiveByID retrieves an active employee, ErrEmployeeNotFound otherwise.
	GetActiveByID(ctx context.Context, id int64) (Employee, error)

	// GetByID retrieves an employee regardless of the active flag.
	GetByID(ctx context.Context, id int64) (Employee, error)

	// ExistsActiveDNI reports whether another active employee already
	// uses the DNI. excludeID skips the employee being updated.
	ExistsActiveDNI(ctx context.Context, dni string, excludeID *int64) (bool, error)

	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) error
	SetQRCodeURL(ctx context.Context, id int64, url string) error

	// ClearPhotoURL removes the stored photo reference.
	ClearPhotoURL(ctx context.Context, id int64) error

	// SoftDelete flips is_active; attendance history is retained.
	SoftDelete(ctx context.Context, id int64) error

	// GetMonthlyTotals sums completed attendance figures for one
	// employee within a calendar month.
	GetMonthlyTotals(ctx context.Context, employeeID int64, year int, month int) (MonthlyTotals, error)
}
