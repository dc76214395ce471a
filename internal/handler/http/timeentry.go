package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/timeentry"
	"github.com/timetracker-pro/timetracker-backend-go/internal/handler/http/middleware"
	"github.com/timetracker-pro/timetracker-backend-go/internal/handler/http/response"
	timeentryservice "github.com/timetracker-pro/timetracker-backend-go/internal/service/timeentry"
)

type TimeEntryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TimeEntryHandlerImpl struct {
	timeEntryService timeentryservice.Service
}

// List implements TimeEntryHandler.
func (t *TimeEntryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	entries, err := t.timeEntryService.List(r.Context(), caller)
	if err != nil {
		slog.Error("Failed to list time entries", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// Create implements TimeEntryHandler.
func (t *TimeEntryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req timeentry.CreateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create time entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := t.timeEntryService.Create(r.Context(), caller, req)
	if err != nil {
		slog.Error("Failed to create time entry", "error", err, "employee_id", req.EmployeeID)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time entry created successfully", created)
}

// Update implements TimeEntryHandler.
func (t *TimeEntryHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	entryID := chi.URLParam(r, "id")

	var req timeentry.UpdateTimeEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update time entry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	updated, err := t.timeEntryService.Update(r.Context(), caller, entryID, req)
	if err != nil {
		slog.Error("Failed to update time entry", "error", err, "entry_id", entryID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry updated successfully", updated)
}

// Delete implements TimeEntryHandler.
func (t *TimeEntryHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	entryID := chi.URLParam(r, "id")

	if err := t.timeEntryService.Delete(r.Context(), caller, entryID); err != nil {
		slog.Error("Failed to delete time entry", "error", err, "entry_id", entryID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time entry deleted successfully", nil)
}

func NewTimeEntryHandler(timeEntryService timeentryservice.Service) TimeEntryHandler {
	return &TimeEntryHandlerImpl{timeEntryService: timeEntryService}
}
