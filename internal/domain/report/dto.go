package report

import (
	"time"

	"github.com/gjd78/planilla-backend/internal/pkg/validator"
)

// ========================================
// REPORT DTOs
// ========================================

type WeeklyReportRequest struct {
	Start string
	End   string
}

func (r *WeeklyReportRequest) Validate() (start, end time.Time, err error) {
	if validator.IsEmpty(r.Start) || validator.IsEmpty(r.End) {
		return time.Time{}, time.Time{}, ErrMissingDateRange
	}
	start, ok := validator.IsValidDate(r.Start)
	if !ok {
		return time.Time{}, time.Time{}, ErrMissingDateRange
	}
	end, ok = validator.IsValidDate(r.End)
	if !ok {
		return time.Time{}, time.Time{}, ErrMissingDateRange
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return start, end, nil
}

type DailyReportRequest struct {
	Date string
}

func (r *DailyReportRequest) Validate() (time.Time, error) {
	if validator.IsEmpty(r.Date) {
		return time.Time{}, ErrMissingDate
	}
	date, ok := validator.IsValidDate(r.Date)
	if !ok {
		return time.Time{}, ErrMissingDate
	}
	return date, nil
}

type MonthlyReportRequest struct {
	Year  int
	Month int
}

func (r *MonthlyReportRequest) Validate() error {
	if r.Year < 2000 || r.Year > 2200 || r.Month < 1 || r.Month > 12 {
		return ErrMissingPeriod
	}
	return nil
}

// ProductionRow is one production employee aggregated over the period
// (weekly report) or one record (daily report).
type ProductionRow struct {
	EmployeeID    int64   `json:"employee_id"`
	Employee      string  `json:"employee"`
	EmployeeType  string  `json:"employee_type"`
	DaysWorked    int     `json:"dias_trabajados"`
	TDespalillo   float64 `json:"t_despalillo"`
	TEscogida     float64 `json:"t_escogida"`
	TMonado       float64 `json:"t_monado"`
	TotalProduced float64 `json:"total_produccion"`
	PropSabado    float64 `json:"prop_sabado"`
	SeptimoDia    float64 `json:"septimo_dia"`
	NetPay        float64 `json:"neto_pagar"`
}

// AlDiaRow is one daily-rate employee aggregated over the period.
type AlDiaRow struct {
	EmployeeID    int64   `json:"employee_id"`
	Employee      string  `json:"employee"`
	EmployeeType  string  `json:"employee_type"`
	MonthlySalary float64 `json:"monthly_salary"`
	DaysWorked    int     `json:"dias_trabajados"`
	HoursExtra    float64 `json:"hours_extra"`
	DailySalary   float64 `json:"salario_diario"`
	OvertimeMoney float64 `json:"horas_extra_dinero"`
	SeptimoDia    float64 `json:"septimo_dia"`
	NetPay        float64 `json:"neto_pagar"`
}

type Summary struct {
	TotalEmployees           int     `json:"total_employees"`
	TotalPayroll             float64 `json:"total_payroll"`
	TotalProductionEmployees int     `json:"total_production_employees"`
	TotalProductionPayroll   float64 `json:"total_production_payroll"`
	TotalAlDiaEmployees      int     `json:"total_aldia_employees"`
	TotalAlDiaPayroll        float64 `json:"total_aldia_payroll"`
}

type WeeklyReport struct {
	Start      string          `json:"start"`
	End        string          `json:"end"`
	Production []ProductionRow `json:"production"`
	AlDia      []AlDiaRow      `json:"alDia"`
	Summary    Summary         `json:"summary"`
}

// DailyRow is one attendance record with the per-record computation for
// its employee type applied. Rows with an unrecognized type carry no
// computed fields; they pass through unmodified.
type DailyRow struct {
	ID            int64   `json:"id"`
	EmployeeID    int64   `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	EmployeeType  string  `json:"employee_type"`
	MonthlySalary float64 `json:"monthly_salary"`
	Date          string  `json:"date"`
	EntryTime     string  `json:"entry_time"`
	ExitTime      *string `json:"exit_time,omitempty"`
	HoursExtra    float64 `json:"hours_extra"`
	TDespalillo   float64 `json:"t_despalillo"`
	TEscogida     float64 `json:"t_escogida"`
	TMonado       float64 `json:"t_monado"`
	PropSabado    float64 `json:"prop_sabado"`
	SeptimoDia    float64 `json:"septimo_dia"`

	// Computed, type-dependent.
	DailySalary   *float64 `json:"salario_diario,omitempty"`
	OvertimeMoney *float64 `json:"horas_extra_dinero,omitempty"`
	TotalProduced *float64 `json:"total_produccion,omitempty"`
	NetPay        *float64 `json:"neto_pagar,omitempty"`
}

// MonthlyRow is one raw attendance record joined with employee master
// data; the monthly report never aggregates.
type MonthlyRow struct {
	ID            int64   `json:"id"`
	EmployeeID    int64   `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	EmployeeType  string  `json:"employee_type"`
	MonthlySalary float64 `json:"monthly_salary"`
	Date          string  `json:"date"`
	EntryTime     string  `json:"entry_time"`
	ExitTime      *string `json:"exit_time,omitempty"`
	HoursExtra    float64 `json:"hours_extra"`
	Despalillo    float64 `json:"despalillo"`
	Escogida      float64 `json:"escogida"`
	Monado        float64 `json:"monado"`
	TDespalillo   float64 `json:"t_despalillo"`
	TEscogida     float64 `json:"t_escogida"`
	TMonado       float64 `json:"t_monado"`
	PropSabado    float64 `json:"prop_sabado"`
	SeptimoDia    float64 `json:"septimo_dia"`
}
