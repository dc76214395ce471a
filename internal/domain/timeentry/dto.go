package timeentry

import (
	"time"

	"github.com/timetracker-pro/timetracker-backend-go/internal/pkg/validator"
)

type TimeEntryResponse struct {
	ID         string     `json:"id"`
	EmployeeID string     `json:"employee_id"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
	Date       string     `json:"date"`
	TotalHours *float64   `json:"total_hours,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (t *TimeEntry) ToResponse() TimeEntryResponse {
	return TimeEntryResponse{
		ID:         t.ID,
		EmployeeID: t.EmployeeID,
		CheckIn:    t.CheckIn,
		CheckOut:   t.CheckOut,
		Date:       t.Date,
		TotalHours: t.TotalHours,
		CreatedAt:  t.CreatedAt,
	}
}

type CreateTimeEntryRequest struct {
	EmployeeID string     `json:"employee_id"`
	CheckIn    time.Time  `json:"check_in"`
	CheckOut   *time.Time `json:"check_out,omitempty"`
}

func (r *CreateTimeEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.CheckIn.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateTimeEntryRequest is a partial patch: only non-nil fields overwrite.
// Changing either timestamp recomputes total_hours against the merged pair;
// the stored date stays pinned to the original check-in day.
type UpdateTimeEntryRequest struct {
	CheckIn  *time.Time `json:"check_in,omitempty"`
	CheckOut *time.Time `json:"check_out,omitempty"`
}

func (r *UpdateTimeEntryRequest) Validate() error {
	// An empty patch is accepted and leaves the entry unchanged.
	return nil
}
