package http

import (
	"encoding/json"
	"net/http"

	"github.com/gjd78/planilla-backend/internal/domain/attendance"
	"github.com/gjd78/planilla-backend/internal/handler/http/response"
)

type AttendanceHandler interface {
	Entry(w http.ResponseWriter, r *http.Request)
	Exit(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// Entry implements AttendanceHandler.
func (h *attendanceHandlerImpl) Entry(w http.ResponseWriter, r *http.Request) {
	var req attendance.EntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordEntry(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Entry registered", result)
}

// Exit implements AttendanceHandler.
func (h *attendanceHandlerImpl) Exit(w http.ResponseWriter, r *http.Request) {
	var req attendance.ExitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.RecordExit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exit registered", result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.TodayRecords(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
