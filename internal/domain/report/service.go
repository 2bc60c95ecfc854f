package report

import "context"

type ReportService interface {
	// Weekly aggregates the date range per employee, partitioned by
	// compensation model, with the payroll formulas applied to the
	// period totals.
	Weekly(ctx context.Context, req WeeklyReportRequest) (WeeklyReport, error)

	// WeeklyPDF renders the weekly report as a printable PDF document.
	WeeklyPDF(ctx context.Context, req WeeklyReportRequest) ([]byte, error)

	// Daily returns the records of a single date with per-record pay
	// computed for each employee's type.
	Daily(ctx context.Context, req DailyReportRequest) ([]DailyRow, error)

	// Monthly returns the raw records of a calendar month without
	// aggregation or recomputation.
	Monthly(ctx context.Context, req MonthlyReportRequest) ([]MonthlyRow, error)
}
