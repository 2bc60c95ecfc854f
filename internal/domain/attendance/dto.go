package attendance

import (
	"math"
	"strconv"
	"strings"

	"github.com/gjd78/planilla-backend/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type EntryRequest struct {
	EmployeeID int64 `json:"employee_id"`
}

func (r *EntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExitRequest carries the type-specific quantities captured at
// clock-out. Scanners send them in whatever shape the badge app
// produced (number, numeric string, or missing), so the fields are
// decoded leniently: anything that does not parse as a non-negative
// float becomes 0.
type ExitRequest struct {
	EmployeeID int64 `json:"employee_id"`
	HoursExtra any   `json:"hours_extra"`
	Despalillo any   `json:"despalillo"`
	Escogida   any   `json:"escogida"`
	Monado     any   `json:"monado"`
}

func (r *ExitRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Quantities returns the coerced numeric inputs.
func (r *ExitRequest) Quantities() (hoursExtra, despalillo, escogida, monado float64) {
	return coerceQuantity(r.HoursExtra),
		coerceQuantity(r.Despalillo),
		coerceQuantity(r.Escogida),
		coerceQuantity(r.Monado)
}

// coerceQuantity applies the lenient numeric policy: absent, malformed
// or negative values default to 0, and NaN never reaches stored fields.
func coerceQuantity(v any) float64 {
	var f float64
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		f = n
	case int:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

type EntryResponse struct {
	ID           int64  `json:"id"`
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	EmployeeType string `json:"employee_type"`
	Date         string `json:"date"`
	EntryTime    string `json:"entry_time"`
	Status       string `json:"status"`
}

type ExitResponse struct {
	EmployeeID   int64  `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	EmployeeType string `json:"employee_type"`
	Date         string `json:"date"`
	EntryTime    string `json:"entry_time"`
	ExitTime     string `json:"exit_time"`

	HoursExtra  float64 `json:"hours_extra"`
	Despalillo  float64 `json:"despalillo"`
	Escogida    float64 `json:"escogida"`
	Monado      float64 `json:"monado"`
	TDespalillo float64 `json:"t_despalillo"`
	TEscogida   float64 `json:"t_escogida"`
	TMonado     float64 `json:"t_monado"`
	PropSabado  float64 `json:"prop_sabado"`
	SeptimoDia  float64 `json:"septimo_dia"`

	Status string `json:"status"`
}

type TodayRecordResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	EmployeeDNI  string  `json:"employee_dni"`
	EmployeeType string  `json:"employee_type"`
	PhotoURL     *string `json:"photo,omitempty"`

	Date             string  `json:"date"`
	EntryTime        string  `json:"entry_time"`
	ExitTime         *string `json:"exit_time,omitempty"`
	EntryTimeDisplay string  `json:"entry_time_display"`
	ExitTimeDisplay  string  `json:"exit_time_display"`

	HoursExtra  float64 `json:"hours_extra"`
	Despalillo  float64 `json:"despalillo"`
	Escogida    float64 `json:"escogida"`
	Monado      float64 `json:"monado"`
	TDespalillo float64 `json:"t_despalillo"`
	TEscogida   float64 `json:"t_escogida"`
	TMonado     float64 `json:"t_monado"`
	PropSabado  float64 `json:"prop_sabado"`
	SeptimoDia  float64 `json:"septimo_dia"`

	Status     string `json:"status"`
	StatusText string `json:"status_text"`
}

type TodayResponse struct {
	Date    string                `json:"date"`
	Count   int                   `json:"count"`
	Records []TodayRecordResponse `json:"records"`
}
