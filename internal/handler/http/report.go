package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/timetracker-pro/timetracker-backend-go/internal/handler/http/middleware"
	"github.com/timetracker-pro/timetracker-backend-go/internal/handler/http/response"
	reportservice "github.com/timetracker-pro/timetracker-backend-go/internal/service/report"
)

type ReportHandler interface {
	EmployeeSummary(w http.ResponseWriter, r *http.Request)
	EmployeeMonths(w http.ResponseWriter, r *http.Request)
	EmployeeDays(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService reportservice.Service
}

// EmployeeSummary implements ReportHandler. month and year query params are
// optional, both default to the current month.
func (h *ReportHandlerImpl) EmployeeSummary(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var month, year int
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			response.BadRequest(w, "Invalid month parameter", nil)
			return
		}
		month = parsed
	}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "Invalid year parameter", nil)
			return
		}
		year = parsed
	}

	summaries, err := h.reportService.EmployeeSummary(r.Context(), caller, month, year)
	if err != nil {
		slog.Error("Failed to build employee summary", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

// EmployeeMonths implements ReportHandler.
func (h *ReportHandlerImpl) EmployeeMonths(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	employeeID := chi.URLParam(r, "id")

	months, err := h.reportService.EmployeeMonths(r.Context(), caller, employeeID)
	if err != nil {
		slog.Error("Failed to build employee months", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, months)
}

// EmployeeDays implements ReportHandler.
func (h *ReportHandlerImpl) EmployeeDays(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	employeeID := chi.URLParam(r, "id")
	yearMonth := chi.URLParam(r, "yearMonth")

	days, err := h.reportService.EmployeeDays(r.Context(), caller, employeeID, yearMonth)
	if err != nil {
		slog.Error("Failed to build employee days", "error", err, "employee_id", employeeID, "year_month", yearMonth)
		response.HandleError(w, err)
		return
	}

	response.Success(w, days)
}

func NewReportHandler(reportService reportservice.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}
