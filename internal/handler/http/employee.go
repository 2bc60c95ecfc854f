package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gjd78/planilla-backend/internal/domain/employee"
	"github.com/gjd78/planilla-backend/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	MonthlyStats(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements EmployeeHandler. The body is multipart so the
// photo can travel with the master data fields.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	salary, _ := strconv.ParseFloat(r.FormValue("monthly_salary"), 64)
	req := employee.CreateEmployeeRequest{
		DNI:           r.FormValue("dni"),
		Name:          r.FormValue("name"),
		Type:          r.FormValue("type"),
		MonthlySalary: salary,
	}

	file, fileHeader, err := r.FormFile("photo")
	if err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	} else if err != http.ErrMissingFile {
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

// Update implements EmployeeHandler.
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	salary, _ := strconv.ParseFloat(r.FormValue("monthly_salary"), 64)
	req := employee.UpdateEmployeeRequest{
		ID:            id,
		DNI:           r.FormValue("dni"),
		Name:          r.FormValue("name"),
		Type:          r.FormValue("type"),
		MonthlySalary: salary,
		RemovePhoto:   r.FormValue("remove_photo") == "true",
	}

	file, fileHeader, err := r.FormFile("photo")
	if err == nil {
		defer file.Close()
		req.File = file
		req.FileHeader = fileHeader
	} else if err != http.ErrMissingFile {
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	result, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", result)
}

// Delete implements EmployeeHandler.
func (h *employeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// MonthlyStats implements EmployeeHandler.
func (h *employeeHandlerImpl) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	result, err := h.employeeService.MonthlyStats(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
