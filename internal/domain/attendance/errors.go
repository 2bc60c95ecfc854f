package attendance

import "errors"

// Attendance domain errors
var (
	// Entry conflicts, split so the caller can tell the sub-cases apart.
	ErrEntryStillOpen      = errors.New("an active entry already exists for today; register the exit first")
	ErrDayAlreadyCompleted = errors.New("the employee already completed the working day")

	// Exit conflict.
	ErrNoOpenSession = errors.New("no pending entry exists for today")

	ErrRecordNotFound = errors.New("attendance record not found")

	// ErrDuplicateDay is raised by the store when the unique index on
	// (employee_id, date) rejects an insert that raced another entry.
	ErrDuplicateDay = errors.New("an attendance record already exists for this employee and date")
)
