package http

import (
	"net/http"

	"github.com/gjd78/planilla-backend/internal/handler/http/response"
	"github.com/gjd78/planilla-backend/internal/repository/postgresql"
)

// DevHandler exposes maintenance operations. It is only mounted when
// the app runs outside production.
type DevHandler interface {
	ResetAttendance(w http.ResponseWriter, r *http.Request)
	Counts(w http.ResponseWriter, r *http.Request)
}

type devHandlerImpl struct {
	maintenance postgresql.MaintenanceRepository
}

func NewDevHandler(maintenance postgresql.MaintenanceRepository) DevHandler {
	return &devHandlerImpl{
		maintenance: maintenance,
	}
}

// ResetAttendance implements DevHandler.
func (h *devHandlerImpl) ResetAttendance(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.maintenance.ResetAttendance(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance reset", map[string]int64{"deleted": deleted})
}

// Counts implements DevHandler.
func (h *devHandlerImpl) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.maintenance.TableCounts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, counts)
}
