package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gjd78/planilla-backend/internal/domain/report"
	"github.com/gjd78/planilla-backend/internal/handler/http/response"
)

type ReportHandler interface {
	Weekly(w http.ResponseWriter, r *http.Request)
	WeeklyPDF(w http.ResponseWriter, r *http.Request)
	Daily(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Weekly implements ReportHandler.
func (h *reportHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	req := report.WeeklyReportRequest{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}

	result, err := h.reportService.Weekly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// WeeklyPDF implements ReportHandler.
func (h *reportHandlerImpl) WeeklyPDF(w http.ResponseWriter, r *http.Request) {
	req := report.WeeklyReportRequest{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
	}

	doc, err := h.reportService.WeeklyPDF(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("planilla_%s_%s.pdf", req.Start, req.End)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	_, _ = w.Write(doc)
}

// Daily implements ReportHandler.
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	req := report.DailyReportRequest{
		Date: r.URL.Query().Get("date"),
	}

	result, err := h.reportService.Daily(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Monthly implements ReportHandler.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	req := report.MonthlyReportRequest{
		Year:  year,
		Month: month,
	}

	result, err := h.reportService.Monthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
