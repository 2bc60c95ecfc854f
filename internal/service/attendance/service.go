package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gjd78/planilla-backend/internal/domain/attendance"
	"github.com/gjd78/planilla-backend/internal/domain/employee"
	"github.com/gjd78/planilla-backend/internal/domain/payroll"
	"github.com/gjd78/planilla-backend/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	rates    payroll.Rates
	location *time.Location
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	rates payroll.Rates,
	location *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		rates:                rates,
		location:             location,
	}
}

// workingDay derives the attendance day from the wall clock in the
// configured timezone. The date is stored timezone-less (UTC midnight)
// so two servers in different zones agree on the day key.
func (a *AttendanceServiceImpl) workingDay(now time.Time) time.Time {
	local := now.In(a.location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// RecordEntry implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RecordEntry(ctx context.Context, req attendance.EntryRequest) (attendance.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EntryResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetActiveByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	now := time.Now().UTC()
	day := a.workingDay(now)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, day)
	if err != nil {
		return attendance.EntryResponse{}, fmt.Errorf("failed to check today's record: %w", err)
	}
	if existing != nil {
		return attendance.EntryResponse{}, entryConflict(existing)
	}

	rec, err := a.AttendanceRepository.Insert(ctx, emp.ID, day, now)
	if err != nil {
		if errors.Is(err, attendance.ErrDuplicateDay) {
			// Lost the race against a concurrent entry; re-read to report
			// the precise state.
			existing, readErr := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, day)
			if readErr == nil && existing != nil {
				return attendance.EntryResponse{}, entryConflict(existing)
			}
			return attendance.EntryResponse{}, attendance.ErrEntryStillOpen
		}
		return attendance.EntryResponse{}, err
	}

	return attendance.EntryResponse{
		ID:           rec.ID,
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		EmployeeType: string(emp.Type),
		Date:         day.Format("2006-01-02"),
		EntryTime:    now.In(a.location).Format("2006-01-02 15:04:05"),
		Status:       attendance.StatusActive,
	}, nil
}

func entryConflict(rec *attendance.Record) error {
	if rec.ExitTime == nil {
		return attendance.ErrEntryStillOpen
	}
	return attendance.ErrDayAlreadyCompleted
}

// RecordExit implements attendance.AttendanceService. Quantities not
// matching the employee's compensation model are discarded, never
// cross-applied; the derived fields are computed once here and stored.
func (a *AttendanceServiceImpl) RecordExit(ctx context.Context, req attendance.ExitRequest) (attendance.ExitResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ExitResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetActiveByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.ExitResponse{}, err
	}

	now := time.Now().UTC()
	day := a.workingDay(now)

	open, err := a.AttendanceRepository.GetOpenByEmployeeAndDate(ctx, emp.ID, day)
	if err != nil {
		return attendance.ExitResponse{}, fmt.Errorf("failed to look up open session: %w", err)
	}
	if open == nil {
		existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, day)
		if err != nil {
			return attendance.ExitResponse{}, fmt.Errorf("failed to check today's record: %w", err)
		}
		if existing != nil {
			return attendance.ExitResponse{}, attendance.ErrDayAlreadyCompleted
		}
		return attendance.ExitResponse{}, attendance.ErrNoOpenSession
	}

	hoursExtra, despalillo, escogida, monado := req.Quantities()

	update := attendance.ExitUpdate{ExitTime: now}
	switch {
	case emp.Type.IsProduction():
		pay := a.rates.ProductionDay(payroll.ProductionInput{
			Despalillo: despalillo,
			Escogida:   escogida,
			Monado:     monado,
		})
		update.Despalillo = despalillo
		update.Escogida = escogida
		update.Monado = monado
		update.TDespalillo = pay.TDespalillo
		update.TEscogida = pay.TEscogida
		update.TMonado = pay.TMonado
		update.PropSabado = pay.SaturdayBonus
		update.SeptimoDia = pay.SeventhDay

	case emp.Type.IsDailyRate():
		// Overtime hours are the only captured figure; the seventh day
		// is a weekly threshold and never accrues on a single record.
		update.HoursExtra = hoursExtra
	}

	if err := a.AttendanceRepository.CompleteExit(ctx, open.ID, update); err != nil {
		return attendance.ExitResponse{}, err
	}

	return attendance.ExitResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		EmployeeType: string(emp.Type),
		Date:         day.Format("2006-01-02"),
		EntryTime:    open.EntryTime.In(a.location).Format("2006-01-02 15:04:05"),
		ExitTime:     now.In(a.location).Format("2006-01-02 15:04:05"),
		HoursExtra:   update.HoursExtra,
		Despalillo:   update.Despalillo,
		Escogida:     update.Escogida,
		Monado:       update.Monado,
		TDespalillo:  payroll.Round2(update.TDespalillo),
		TEscogida:    payroll.Round2(update.TEscogida),
		TMonado:      payroll.Round2(update.TMonado),
		PropSabado:   payroll.Round2(update.PropSabado),
		SeptimoDia:   payroll.Round2(update.SeptimoDia),
		Status:       attendance.StatusCompleted,
	}, nil
}

// TodayRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) TodayRecords(ctx context.Context) (attendance.TodayResponse, error) {
	day := a.workingDay(time.Now().UTC())

	records, err := a.AttendanceRepository.ListByDate(ctx, day)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to list today's records: %w", err)
	}

	responses := make([]attendance.TodayRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, a.toTodayRecord(&records[i]))
	}

	return attendance.TodayResponse{
		Date:    day.Format("2006-01-02"),
		Count:   len(responses),
		Records: responses,
	}, nil
}

func (a *AttendanceServiceImpl) toTodayRecord(rec *attendance.Record) attendance.TodayRecordResponse {
	resp := attendance.TodayRecordResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		EmployeeDNI:  rec.EmployeeDNI,
		EmployeeType: string(rec.EmployeeType),
		PhotoURL:     rec.PhotoURL,

		Date:             rec.Date.Format("2006-01-02"),
		EntryTime:        rec.EntryTime.In(a.location).Format("2006-01-02 15:04:05"),
		EntryTimeDisplay: rec.EntryTime.In(a.location).Format("03:04 PM"),
		ExitTimeDisplay:  "-",

		HoursExtra:  rec.HoursExtra,
		Despalillo:  rec.Despalillo,
		Escogida:    rec.Escogida,
		Monado:      rec.Monado,
		TDespalillo: payroll.Round2(rec.TDespalillo),
		TEscogida:   payroll.Round2(rec.TEscogida),
		TMonado:     payroll.Round2(rec.TMonado),
		PropSabado:  payroll.Round2(rec.PropSabado),
		SeptimoDia:  payroll.Round2(rec.SeptimoDia),

		Status:     rec.Status(),
		StatusText: "Trabajando",
	}

	if rec.ExitTime != nil {
		exit := rec.ExitTime.In(a.location).Format("2006-01-02 15:04:05")
		resp.ExitTime = &exit
		resp.ExitTimeDisplay = rec.ExitTime.In(a.location).Format("03:04 PM")
		resp.StatusText = "Completado"
	}

	return resp
}
