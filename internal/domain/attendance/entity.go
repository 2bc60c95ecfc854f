package attendance

import (
	"time"

	"github.com/gjd78/planilla-backend/internal/domain/employee"
)

// Statuses derived from exit_time nullity; nothing stores them.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Record is one employee's attendance for one working day. A record is
// created at clock-in with a null ExitTime ("active") and mutated
// exactly once at clock-out, which also stores the derived monetary
// fields. Completed records are immutable.
type Record struct {
	ID         int64
	EmployeeID int64
	Date       time.Time // working day in the configured zone, date only
	EntryTime  time.Time
	ExitTime   *time.Time

	// Captured at exit. Only the fields matching the employee type are
	// ever non-zero (hours for Al Día, piece counts for Producción).
	HoursExtra float64
	Despalillo float64
	Escogida   float64
	Monado     float64

	// Derived at exit for production records.
	TDespalillo float64
	TEscogida   float64
	TMonado     float64
	PropSabado  float64
	SeptimoDia  float64

	CreatedAt time.Time

	// Joined employee master data.
	EmployeeName  string
	EmployeeDNI   string
	EmployeeType  employee.Type
	MonthlySalary float64
	PhotoURL      *string
}

// Status reports the record's lifecycle state, derived purely from
// ExitTime nullity.
func (r *Record) Status() string {
	if r.ExitTime == nil {
		return StatusActive
	}
	return StatusCompleted
}
