package timeentry

import (
	"context"
	"time"
)

// UpdateTimeEntryFields carries resolved column values for a partial update.
// TotalHours is recomputed by the service against the merged timestamps and
// always written when either timestamp changes.
type UpdateTimeEntryFields struct {
	CheckIn    *time.Time
	CheckOut   *time.Time
	TotalHours *float64
	HoursKnown bool // distinguishes "write NULL" from "leave untouched"
}

type TimeEntryRepository interface {
	List(ctx context.Context) ([]TimeEntry, error)
	ListByEmployees(ctx context.Context, employeeIDs []string) ([]TimeEntry, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]TimeEntry, error)
	// ListByEmployeeDateRange returns entries with dateFrom <= date < dateTo,
	// compared lexically on the fixed-width "YYYY-MM-DD" format.
	ListByEmployeeDateRange(ctx context.Context, employeeID, dateFrom, dateTo string) ([]TimeEntry, error)
	GetByID(ctx context.Context, id string) (TimeEntry, error)
	Create(ctx context.Context, newEntry TimeEntry) (TimeEntry, error)
	Update(ctx context.Context, id string, fields UpdateTimeEntryFields) error
	Delete(ctx context.Context, id string) error
}
