package attendance

import "context"

// AttendanceService governs the per-(employee, day) state machine:
// NoRecord -> Active (entry) -> Completed (exit), with Completed
// terminal. "Today" is derived in the configured attendance timezone.
type AttendanceService interface {
	// RecordEntry clocks an employee in. Fails with
	// employee.ErrEmployeeNotFound for missing/inactive employees,
	// ErrEntryStillOpen or ErrDayAlreadyCompleted on conflicts.
	RecordEntry(ctx context.Context, req EntryRequest) (EntryResponse, error)

	// RecordExit clocks an employee out, computing and storing the
	// derived payroll fields for the employee's type. Inputs not
	// matching the type are zeroed, never cross-applied.
	RecordExit(ctx context.Context, req ExitRequest) (ExitResponse, error)

	// TodayRecords lists today's records with derived status.
	TodayRecords(ctx context.Context) (TodayResponse, error)
}
