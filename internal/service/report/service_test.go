package report

import (
	"context"
	"testing"
	"time"

	"github.com/gjd78/planilla-backend/internal/domain/attendance"
	"github.com/gjd78/planilla-backend/internal/domain/employee"
	"github.com/gjd78/planilla-backend/internal/domain/payroll"
	"github.com/gjd78/planilla-backend/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportRepo struct {
	records []attendance.Record
}

func (f *fakeReportRepo) AttendanceInRange(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func completedRecord(id, employeeID int64, date string) attendance.Record {
	entry := day(date).Add(7 * time.Hour)
	exit := entry.Add(9 * time.Hour)
	return attendance.Record{
		ID:         id,
		EmployeeID: employeeID,
		Date:       day(date),
		EntryTime:  entry,
		ExitTime:   &exit,
	}
}

func productionRecord(id, employeeID int64, date string, tDesp, tEsc, tMon float64) attendance.Record {
	rec := completedRecord(id, employeeID, date)
	rec.EmployeeName = "Marta Lopez"
	rec.EmployeeType = employee.TypeProduction
	rec.TDespalillo = tDesp
	rec.TEscogida = tEsc
	rec.TMonado = tMon
	rates := payroll.DefaultRates()
	rec.PropSabado = (tDesp + tEsc + tMon) * rates.SaturdayFactor
	rec.SeptimoDia = (tDesp + tEsc + tMon) * rates.SeventhDayFactor
	return rec
}

func alDiaRecord(id, employeeID int64, date string, salary, hoursExtra float64) attendance.Record {
	rec := completedRecord(id, employeeID, date)
	rec.EmployeeName = "Jose Reyes"
	rec.EmployeeType = employee.TypeDailyRate
	rec.MonthlySalary = salary
	rec.HoursExtra = hoursExtra
	return rec
}

func TestWeekly(t *testing.T) {
	ctx := context.Background()

	t.Run("requires the date range", func(t *testing.T) {
		svc := NewReportService(&fakeReportRepo{}, payroll.DefaultRates())

		_, err := svc.Weekly(ctx, report.WeeklyReportRequest{})
		assert.ErrorIs(t, err, report.ErrMissingDateRange)

		_, err = svc.Weekly(ctx, report.WeeklyReportRequest{Start: "2026-08-23", End: "2026-08-17"})
		assert.ErrorIs(t, err, report.ErrInvalidDateRange)
	})

	t.Run("aggregates production totals before applying supplements", func(t *testing.T) {
		repo := &fakeReportRepo{records: []attendance.Record{
			productionRecord(1, 1, "2026-08-17", 160, 210, 10),
			productionRecord(2, 1, "2026-08-18", 80, 0, 0),
		}}
		svc := NewReportService(repo, payroll.DefaultRates())

		rep, err := svc.Weekly(ctx, report.WeeklyReportRequest{Start: "2026-08-17", End: "2026-08-23"})
		require.NoError(t, err)
		require.Len(t, rep.Production, 1)

		row := rep.Production[0]
		assert.Equal(t, 2, row.DaysWorked)
		assert.InDelta(t, 240.0, row.TDespalillo, 0.001)
		assert.InDelta(t, 460.0, row.TotalProduced, 0.001)
		// Supplements are taken on the period total, not summed per day.
		assert.InDelta(t, 460.0*0.090909, row.PropSabado, 0.01)
		assert.InDelta(t, 460.0*0.181818, row.SeptimoDia, 0.01)
		assert.InDelta(t, row.TotalProduced+row.PropSabado+row.SeptimoDia, row.NetPay, 0.02)
	})

	t.Run("grants one seventh day at the weekly threshold", func(t *testing.T) {
		salary := 9000.0
		var records []attendance.Record
		// 5 worked days crosses the threshold.
		for i := 0; i < 5; i++ {
			records = append(records, alDiaRecord(int64(i+1), 2, day("2026-08-17").AddDate(0, 0, i).Format("2006-01-02"), salary, 0))
		}
		// A second employee with 3 days stays under it.
		records = append(records,
			alDiaRecord(10, 3, "2026-08-17", salary, 0),
			alDiaRecord(11, 3, "2026-08-18", salary, 0),
			alDiaRecord(12, 3, "2026-08-19", salary, 0),
		)
		svc := NewReportService(&fakeReportRepo{records: records}, payroll.DefaultRates())

		rep, err := svc.Weekly(ctx, report.WeeklyReportRequest{Start: "2026-08-17", End: "2026-08-23"})
		require.NoError(t, err)
		require.Len(t, rep.AlDia, 2)

		byID := make(map[int64]report.AlDiaRow)
		for _, row := range rep.AlDia {
			byID[row.EmployeeID] = row
		}

		daily := salary / 30
		assert.InDelta(t, daily, byID[2].SeptimoDia, 0.01)
		assert.InDelta(t, 5*daily+daily, byID[2].NetPay, 0.01)
		assert.Zero(t, byID[3].SeptimoDia)
		assert.InDelta(t, 3*daily, byID[3].NetPay, 0.01)
	})

	t.Run("summary sums both partitions", func(t *testing.T) {
		repo := &fakeReportRepo{records: []attendance.Record{
			productionRecord(1, 1, "2026-08-17", 160, 210, 10),
			alDiaRecord(2, 2, "2026-08-17", 9000, 4),
		}}
		svc := NewReportService(repo, payroll.DefaultRates())

		rep, err := svc.Weekly(ctx, report.WeeklyReportRequest{Start: "2026-08-17", End: "2026-08-23"})
		require.NoError(t, err)

		assert.Equal(t, 1, rep.Summary.TotalProductionEmployees)
		assert.Equal(t, 1, rep.Summary.TotalAlDiaEmployees)
		assert.Equal(t, 2, rep.Summary.TotalEmployees)
		assert.InDelta(t,
			rep.Summary.TotalProductionPayroll+rep.Summary.TotalAlDiaPayroll,
			rep.Summary.TotalPayroll, 0.02)
	})

	t.Run("skips unrecognized employee types", func(t *testing.T) {
		unknown := completedRecord(1, 5, "2026-08-17")
		unknown.EmployeeType = employee.TypeUnknown
		svc := NewReportService(&fakeReportRepo{records: []attendance.Record{unknown}}, payroll.DefaultRates())

		rep, err := svc.Weekly(ctx, report.WeeklyReportRequest{Start: "2026-08-17", End: "2026-08-23"})
		require.NoError(t, err)
		assert.Empty(t, rep.Production)
		assert.Empty(t, rep.AlDia)
		assert.Zero(t, rep.Summary.TotalEmployees)
	})
}

func TestDaily(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a date", func(t *testing.T) {
		svc := NewReportService(&fakeReportRepo{}, payroll.DefaultRates())
		_, err := svc.Daily(ctx, report.DailyReportRequest{})
		assert.ErrorIs(t, err, report.ErrMissingDate)
	})

	t.Run("computes per-record pay by type", func(t *testing.T) {
		repo := &fakeReportRepo{records: []attendance.Record{
			productionRecord(1, 1, "2026-08-17", 160, 210, 10),
			alDiaRecord(2, 2, "2026-08-17", 9000, 4),
		}}
		svc := NewReportService(repo, payroll.DefaultRates())

		rows, err := svc.Daily(ctx, report.DailyReportRequest{Date: "2026-08-17"})
		require.NoError(t, err)
		require.Len(t, rows, 2)

		byID := make(map[int64]report.DailyRow)
		for _, row := range rows {
			byID[row.EmployeeID] = row
		}

		prod := byID[1]
		require.NotNil(t, prod.TotalProduced)
		assert.InDelta(t, 380.0, *prod.TotalProduced, 0.001)
		require.NotNil(t, prod.NetPay)
		assert.InDelta(t, 483.64, *prod.NetPay, 0.01)
		assert.Nil(t, prod.DailySalary)

		alDia := byID[2]
		require.NotNil(t, alDia.DailySalary)
		assert.InDelta(t, 300.0, *alDia.DailySalary, 0.001)
		require.NotNil(t, alDia.OvertimeMoney)
		assert.InDelta(t, 187.5, *alDia.OvertimeMoney, 0.001)
		require.NotNil(t, alDia.NetPay)
		// Single day: base + overtime, no seventh day.
		assert.InDelta(t, 487.5, *alDia.NetPay, 0.001)
	})
}

func TestMonthly(t *testing.T) {
	ctx := context.Background()

	t.Run("requires year and month", func(t *testing.T) {
		svc := NewReportService(&fakeReportRepo{}, payroll.DefaultRates())
		_, err := svc.Monthly(ctx, report.MonthlyReportRequest{Year: 2026})
		assert.ErrorIs(t, err, report.ErrMissingPeriod)
	})

	t.Run("returns raw rows without aggregation", func(t *testing.T) {
		repo := &fakeReportRepo{records: []attendance.Record{
			productionRecord(1, 1, "2026-08-03", 80, 0, 0),
			productionRecord(2, 1, "2026-08-31", 80, 0, 0),
			productionRecord(3, 1, "2026-09-01", 80, 0, 0), // next month
		}}
		svc := NewReportService(repo, payroll.DefaultRates())

		rows, err := svc.Monthly(ctx, report.MonthlyReportRequest{Year: 2026, Month: 8})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "2026-08-03", rows[0].Date)
		assert.Equal(t, "2026-08-31", rows[1].Date)
	})
}
