package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/gjd78/planilla-backend/internal/domain/attendance"
	"github.com/gjd78/planilla-backend/internal/domain/employee"
	"github.com/gjd78/planilla-backend/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[int64]employee.Employee
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) GetActiveByID(ctx context.Context, id int64) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok || !emp.IsActive {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ExistsActiveDNI(ctx context.Context, dni string, excludeID *int64) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) SetQRCodeURL(ctx context.Context, id int64, url string) error { return nil }

func (f *fakeEmployeeRepo) ClearPhotoURL(ctx context.Context, id int64) error { return nil }

func (f *fakeEmployeeRepo) SoftDelete(ctx context.Context, id int64) error { return nil }

func (f *fakeEmployeeRepo) GetMonthlyTotals(ctx context.Context, employeeID int64, year int, month int) (employee.MonthlyTotals, error) {
	return employee.MonthlyTotals{}, nil
}

type fakeAttendanceRepo struct {
	records map[string]*attendance.Record
	nextID  int64
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Record)}
}

func dayKey(employeeID int64, date time.Time) string {
	return fmt.Sprintf("%d|%s", employeeID, date.Format("2006-01-02"))
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	if rec, ok := f.records[dayKey(employeeID, date)]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Insert(ctx context.Context, employeeID int64, date time.Time, entryTime time.Time) (attendance.Record, error) {
	key := dayKey(employeeID, date)
	if _, ok := f.records[key]; ok {
		return attendance.Record{}, attendance.ErrDuplicateDay
	}
	f.nextID++
	rec := &attendance.Record{
		ID:         f.nextID,
		EmployeeID: employeeID,
		Date:       date,
		EntryTime:  entryTime,
	}
	f.records[key] = rec
	return *rec, nil
}

func (f *fakeAttendanceRepo) GetOpenByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*attendance.Record, error) {
	rec, ok := f.records[dayKey(employeeID, date)]
	if !ok || rec.ExitTime != nil {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeAttendanceRepo) CompleteExit(ctx context.Context, recordID int64, update attendance.ExitUpdate) error {
	for _, rec := range f.records {
		if rec.ID == recordID {
			if rec.ExitTime != nil {
				return attendance.ErrNoOpenSession
			}
			exit := update.ExitTime
			rec.ExitTime = &exit
			rec.HoursExtra = update.HoursExtra
			rec.Despalillo = update.Despalillo
			rec.Escogida = update.Escogida
			rec.Monado = update.Monado
			rec.TDespalillo = update.TDespalillo
			rec.TEscogida = update.TEscogida
			rec.TMonado = update.TMonado
			rec.PropSabado = update.PropSabado
			rec.SeptimoDia = update.SeptimoDia
			return nil
		}
	}
	return attendance.ErrNoOpenSession
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.Date.Equal(date) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListRangeJoined(ctx context.Context, start, end time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if !rec.Date.Before(start) && !rec.Date.After(end) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func newTestService(repo *fakeAttendanceRepo, employees map[int64]employee.Employee) attendance.AttendanceService {
	return NewAttendanceService(nil, repo, &fakeEmployeeRepo{employees: employees}, payroll.DefaultRates(), time.UTC)
}

func productionEmployee(id int64) employee.Employee {
	return employee.Employee{
		ID:       id,
		DNI:      "0801199900011",
		Name:     "Marta Lopez",
		Type:     employee.TypeProduction,
		IsActive: true,
	}
}

func dailyRateEmployee(id int64, salary float64) employee.Employee {
	return employee.Employee{
		ID:            id,
		DNI:           "0801198800022",
		Name:          "Jose Reyes",
		Type:          employee.TypeDailyRate,
		MonthlySalary: salary,
		IsActive:      true,
	}
}

func TestRecordEntry(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active record", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, map[int64]employee.Employee{1: productionEmployee(1)})

		resp, err := svc.RecordEntry(ctx, attendance.EntryRequest{EmployeeID: 1})
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusActive, resp.Status)
		assert.Equal(t, "Marta Lopez", resp.EmployeeName)
	})

	t.Run("rejects unknown employee", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, map[int64]employee.Employee{})

		_, err := svc.RecordEntry(ctx, attendance.EntryRequest{EmployeeID: 99})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("rejects second entry while still open", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, map[int64]employee.Employee{1: productionEmployee(1)})

		_, err := svc.RecordEntry(ctx, attendance.EntryRequest{EmployeeID: 1})
		require.NoError(t, err)

		_, err = svc.RecordEntry(ctx, attendance.EntryRequest{EmployeeID: 1})
		assert.ErrorIs(t, err, attendance.ErrEntryStillOpen)
	})

	t.Run("rejects entry after day completed", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, map[int64]employee.Employee{1: productionEmployee(1)})

		_, err := svc.RecordEntry(ctx, attendance.EntryRequest{EmployeeID: 1})
		require.NoError(t, err)
		_, err = svc.RecordExit(ctx, attendance.ExitRequest{EmployeeID: 1})
		require.NoError(t, err)

		_, err = svc.RecordEntry(ctx, attendance.EntryRequest{EmployeeID: 1})
		assert.ErrorIs(t, err, attendance.ErrDayAlreadyCompleted)
	})

	t.Run("validates employee_id", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, nil)

		_, err := svc.RecordEntry(ctx, attendance.EntryRequest{})
		assert.Error(t, err)
	})
}

func TestRecordExit(t *testing.T) {
	ctx := context.Background()

	t.Run("computes production pay from piece counts", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, map[int64]employee.Employee{1: productionEmployee(1)})

		_, err := svc.RecordEntry(ctx, attendance.EntryRequest{EmployeeID: 1})
		require.NoError(t, err)

		resp, err := svc.RecordExit(ctx, attendance.ExitRequest{
			EmployeeID: 1,
			Despalillo: 2.0,
			Escogida:   3.0,
			Monado:     10.0,
		})
		require.NoError(t, err)
		assert.Equal(t, attendance.StatusCompleted, resp.Status)
		assert.InDelta(t, 160.0, resp.TDespalillo, 0.001)
		assert.InDelta(t, 210.0, resp.TEscogida, 0.001)
		assert.InDelta(t, 10.0, resp.TMonado, 0.001)
		assert.InDelta(t, 34.55, resp.PropSabado, 0.01)
		assert.InDelta(t, 69.09, resp.SeptimoDia, 0.01)
	})

	t.Run("coerces string and missing quantities", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, map[int64]employee.Employee{1: productionEmployee(1)})

		_, err := svc.RecordEntry(ctx, attendance.EntryRequest{EmployeeID: 1})
		require.NoError(t, err)

		resp, err := svc.RecordExit(ctx, attendance.ExitRequest{
			EmployeeID: 1,
			Despalillo: "2",
			Escogida:   "garbage",
		})
		require.NoError(t, err)
		assert.InDelta(t, 160.0, resp.TDespalillo, 0.001)
		assert.Zero(t, resp.TEscogida)
		assert.Zero(t, resp.TMonado)
	})

	t.Run("daily rate keeps hours and drops piece counts", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, map[int64]employee.Employee{2: dailyRateEmployee(2, 9000)})

		_, err := svc.RecordEntry(ctx, attendance.EntryRequest{EmployeeID: 2})
		require.NoError(t, err)

		resp, err := svc.RecordExit(ctx, attendance.ExitRequest{
			EmployeeID: 2,
			HoursExtra: 4.0,
			Despalillo: 50.0, // wrong model, must not be stored
		})
		require.NoError(t, err)
		assert.InDelta(t, 4.0, resp.HoursExtra, 0.001)
		assert.Zero(t, resp.Despalillo)
		assert.Zero(t, resp.TDespalillo)
		// The seventh day is a weekly threshold, never per record.
		assert.Zero(t, resp.SeptimoDia)
	})

	t.Run("rejects exit without entry", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, map[int64]employee.Employee{1: productionEmployee(1)})

		_, err := svc.RecordExit(ctx, attendance.ExitRequest{EmployeeID: 1})
		assert.ErrorIs(t, err, attendance.ErrNoOpenSession)
	})

	t.Run("rejects second exit", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, map[int64]employee.Employee{1: productionEmployee(1)})

		_, err := svc.RecordEntry(ctx, attendance.EntryRequest{EmployeeID: 1})
		require.NoError(t, err)
		_, err = svc.RecordExit(ctx, attendance.ExitRequest{EmployeeID: 1})
		require.NoError(t, err)

		_, err = svc.RecordExit(ctx, attendance.ExitRequest{EmployeeID: 1})
		assert.ErrorIs(t, err, attendance.ErrDayAlreadyCompleted)
	})
}

func TestTodayRecords(t *testing.T) {
	ctx := context.Background()

	repo := newFakeAttendanceRepo()
	svc := newTestService(repo, map[int64]employee.Employee{
		1: productionEmployee(1),
		2: dailyRateEmployee(2, 9000),
	})

	resp, err := svc.TodayRecords(ctx)
	require.NoError(t, err)
	assert.Zero(t, resp.Count)

	_, err = svc.RecordEntry(ctx, attendance.EntryRequest{EmployeeID: 1})
	require.NoError(t, err)
	_, err = svc.RecordEntry(ctx, attendance.EntryRequest{EmployeeID: 2})
	require.NoError(t, err)
	_, err = svc.RecordExit(ctx, attendance.ExitRequest{EmployeeID: 2, HoursExtra: 1.0})
	require.NoError(t, err)

	resp, err = svc.TodayRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)

	byID := make(map[int64]attendance.TodayRecordResponse)
	for _, rec := range resp.Records {
		byID[rec.EmployeeID] = rec
	}
	assert.Equal(t, attendance.StatusActive, byID[1].Status)
	assert.Equal(t, "-", byID[1].ExitTimeDisplay)
	assert.Equal(t, attendance.StatusCompleted, byID[2].Status)
	assert.NotNil(t, byID[2].ExitTime)
}
