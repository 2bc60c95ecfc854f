package response

import (
	"errors"
	"net/http"

	"github.com/gjd78/planilla-backend/internal/domain/attendance"
	"github.com/gjd78/planilla-backend/internal/domain/auth"
	"github.com/gjd78/planilla-backend/internal/domain/employee"
	"github.com/gjd78/planilla-backend/internal/domain/report"
	"github.com/gjd78/planilla-backend/internal/domain/user"
	"github.com/gjd78/planilla-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserInactive):
		Unauthorized(w, "User account is inactive")
	case errors.Is(err, auth.ErrCurrentPasswordRequired):
		BadRequest(w, "Current password is required to change the password", nil)
	case errors.Is(err, auth.ErrCurrentPasswordIncorrect):
		Unauthorized(w, "Current password is incorrect")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, user.ErrSuperAdminLocked):
		Forbidden(w, "Super admin accounts cannot be modified")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDNIExists):
		Conflict(w, "DNI already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEntryStillOpen):
		Conflict(w, "Employee already has an open entry today")
	case errors.Is(err, attendance.ErrDayAlreadyCompleted):
		Conflict(w, "Employee already completed today's attendance")
	case errors.Is(err, attendance.ErrNoOpenSession):
		Conflict(w, "Employee has no open entry today")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Report parameter errors
	case errors.Is(err, report.ErrMissingDateRange),
		errors.Is(err, report.ErrInvalidDateRange),
		errors.Is(err, report.ErrMissingDate),
		errors.Is(err, report.ErrMissingPeriod):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
