package employee

import (
	"mime/multipart"

	"github.com/gjd78/planilla-backend/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	DNI           string
	Name          string
	Type          string
	MonthlySalary float64

	// Optional photo, attached from the multipart form.
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidDNI(r.DNI) {
		errs = append(errs, validator.ValidationError{
			Field:   "dni",
			Message: "dni must be exactly 13 digits",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !ParseType(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be Producción or Al Día",
		})
	}

	if r.MonthlySalary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_salary",
			Message: "monthly_salary cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            int64
	DNI           string
	Name          string
	Type          string
	MonthlySalary float64
	RemovePhoto   bool

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		DNI:           r.DNI,
		Name:          r.Name,
		Type:          r.Type,
		MonthlySalary: r.MonthlySalary,
	}
	return create.Validate()
}

type EmployeeResponse struct {
	ID            int64   `json:"id"`
	DNI           string  `json:"dni"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	MonthlySalary float64 `json:"monthly_salary"`
	PhotoURL      *string `json:"photo,omitempty"`
	QRCodeURL     *string `json:"qr_code,omitempty"`
	IsActive      bool    `json:"is_active"`
}

func (e *Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		DNI:           e.DNI,
		Name:          e.Name,
		Type:          string(e.Type),
		MonthlySalary: e.MonthlySalary,
		PhotoURL:      e.PhotoURL,
		QRCodeURL:     e.QRCodeURL,
		IsActive:      e.IsActive,
	}
}

// MonthlyStatsResponse is the current-month aggregate for one employee.
// Production and Al Día employees expose different fields; zero-value
// fields of the other model are omitted.
type MonthlyStatsResponse struct {
	Type       string `json:"type"`
	DaysWorked int    `json:"dias_trabajados"`

	// Production
	TotalDespalillo float64 `json:"total_despalillo,omitempty"`
	TotalEscogida   float64 `json:"total_escogida,omitempty"`
	TotalMonado     float64 `json:"total_monado,omitempty"`
	TDespalillo     float64 `json:"t_despalillo,omitempty"`
	TEscogida       float64 `json:"t_escogida,omitempty"`
	TMonado         float64 `json:"t_monado,omitempty"`

	// Al Día
	HoursExtra    float64 `json:"horas_extras,omitempty"`
	OvertimeMoney float64 `json:"he_dinero,omitempty"`
	DailySalary   float64 `json:"salario_diario,omitempty"`
	Saturday      float64 `json:"sabado,omitempty"`

	PropSabado float64 `json:"prop_sabado"`
	SeptimoDia float64 `json:"septimo_dia"`
	NetPay     float64 `json:"neto_pagar"`
}

// MonthlyTotals are the summed attendance figures for one employee in a
// month, over completed records only.
type MonthlyTotals struct {
	DaysWorked  int
	Despalillo  float64
	Escogida    float64
	Monado      float64
	TDespalillo float64
	TEscogida   float64
	TMonado     float64
	HoursExtra  float64
}
