package employee

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gjd78/planilla-backend/internal/domain/employee"
	"github.com/gjd78/planilla-backend/internal/domain/payroll"
	"github.com/gjd78/planilla-backend/internal/pkg/database"
	"github.com/gjd78/planilla-backend/internal/pkg/qrcode"
	"github.com/gjd78/planilla-backend/internal/pkg/storage"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	fileStorage storage.FileStorage
	rates       payroll.Rates
	location    *time.Location
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	fileStorage storage.FileStorage,
	rates payroll.Rates,
	location *time.Location,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		fileStorage:        fileStorage,
		rates:              rates,
		location:           location,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, employees[i].ToResponse())
	}

	return responses, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.EmployeeRepository.ExistsActiveDNI(ctx, req.DNI, nil)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check dni: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrDNIExists
	}

	newEmployee := employee.Employee{
		DNI:           req.DNI,
		Name:          strings.TrimSpace(req.Name),
		Type:          employee.ParseType(req.Type),
		MonthlySalary: req.MonthlySalary,
	}

	if req.File != nil && req.FileHeader != nil {
		photoURL, err := s.storePhoto(ctx, req)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		newEmployee.PhotoURL = &photoURL
	}

	created, err := s.EmployeeRepository.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	// Badge QR encodes the DNI; a failed generation does not roll back
	// the registration, the badge can be re-issued by editing the DNI.
	if qrURL, err := s.storeQRCode(ctx, created.ID, created.DNI); err == nil {
		created.QRCodeURL = &qrURL
		_ = s.EmployeeRepository.SetQRCodeURL(ctx, created.ID, qrURL)
	}

	return created.ToResponse(), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.EmployeeRepository.GetActiveByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DNI != existing.DNI {
		exists, err := s.EmployeeRepository.ExistsActiveDNI(ctx, req.DNI, &req.ID)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check dni: %w", err)
		}
		if exists {
			return employee.EmployeeResponse{}, employee.ErrDNIExists
		}
	}

	updated := employee.Employee{
		ID:            req.ID,
		DNI:           req.DNI,
		Name:          strings.TrimSpace(req.Name),
		Type:          employee.ParseType(req.Type),
		MonthlySalary: req.MonthlySalary,
	}

	if req.File != nil && req.FileHeader != nil {
		photoURL, err := s.storePhoto(ctx, employee.CreateEmployeeRequest{File: req.File, FileHeader: req.FileHeader})
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		updated.PhotoURL = &photoURL
	}

	if err := s.EmployeeRepository.Update(ctx, updated); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.RemovePhoto && updated.PhotoURL == nil {
		if err := s.EmployeeRepository.ClearPhotoURL(ctx, req.ID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	// A DNI change invalidates the printed badge.
	if req.DNI != existing.DNI {
		if qrURL, err := s.storeQRCode(ctx, req.ID, req.DNI); err == nil {
			_ = s.EmployeeRepository.SetQRCodeURL(ctx, req.ID, qrURL)
		}
	}

	reloaded, err := s.EmployeeRepository.GetActiveByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to reload employee: %w", err)
	}

	return reloaded.ToResponse(), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.EmployeeRepository.SoftDelete(ctx, id)
}

// MonthlyStats implements employee.EmployeeService. The month is the
// current one in the attendance timezone, and the totals cover
// completed records only.
func (s *EmployeeServiceImpl) MonthlyStats(ctx context.Context, id int64) (employee.MonthlyStatsResponse, error) {
	emp, err := s.EmployeeRepository.GetActiveByID(ctx, id)
	if err != nil {
		return employee.MonthlyStatsResponse{}, err
	}

	now := time.Now().In(s.location)
	totals, err := s.EmployeeRepository.GetMonthlyTotals(ctx, id, now.Year(), int(now.Month()))
	if err != nil {
		return employee.MonthlyStatsResponse{}, err
	}

	resp := employee.MonthlyStatsResponse{
		Type:       string(emp.Type),
		DaysWorked: totals.DaysWorked,
	}

	switch {
	case emp.Type.IsProduction():
		pay := s.rates.ProductionPeriod(totals.TDespalillo, totals.TEscogida, totals.TMonado)
		resp.TotalDespalillo = totals.Despalillo
		resp.TotalEscogida = totals.Escogida
		resp.TotalMonado = totals.Monado
		resp.TDespalillo = payroll.Round2(pay.TDespalillo)
		resp.TEscogida = payroll.Round2(pay.TEscogida)
		resp.TMonado = payroll.Round2(pay.TMonado)
		resp.PropSabado = payroll.Round2(pay.SaturdayBonus)
		resp.SeptimoDia = payroll.Round2(pay.SeventhDay)
		resp.NetPay = payroll.Round2(pay.NetPay)

	case emp.Type.IsDailyRate():
		pay := s.rates.DailyRatePeriod(emp.MonthlySalary, totals.HoursExtra, totals.DaysWorked)
		resp.HoursExtra = totals.HoursExtra
		resp.OvertimeMoney = payroll.Round2(pay.OvertimeMoney)
		resp.DailySalary = payroll.Round2(pay.DailySalary)
		resp.Saturday = payroll.Round2(pay.DailySalary)
		resp.SeptimoDia = payroll.Round2(pay.SeventhDay)
		resp.NetPay = payroll.Round2(pay.NetPay)
	}

	return resp, nil
}

func (s *EmployeeServiceImpl) storePhoto(ctx context.Context, req employee.CreateEmployeeRequest) (string, error) {
	ext := strings.ToLower(filepath.Ext(req.FileHeader.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	path := fmt.Sprintf("photos/%s%s", uuid.NewString(), ext)

	stored, err := s.fileStorage.Upload(ctx, req.File, path, req.FileHeader.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to store photo: %w", err)
	}

	url, err := s.fileStorage.GetURL(ctx, stored)
	if err != nil {
		return "", fmt.Errorf("failed to build photo url: %w", err)
	}

	return url, nil
}

func (s *EmployeeServiceImpl) storeQRCode(ctx context.Context, employeeID int64, dni string) (string, error) {
	png, err := qrcode.GeneratePNG(dni)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("qrcodes/employee_%d.png", employeeID)
	stored, err := s.fileStorage.Upload(ctx, bytes.NewReader(png), path, "image/png")
	if err != nil {
		return "", err
	}

	return s.fileStorage.GetURL(ctx, stored)
}
