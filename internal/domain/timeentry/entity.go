package timeentry

import "time"

// TimeEntry records a single check-in, optionally closed by a check-out.
//
// Date is the calendar day ("YYYY-MM-DD") of the original check-in, fixed at
// creation. It is deliberately not recomputed when check_in is later edited;
// monthly grouping keys off this stored value.
type TimeEntry struct {
	ID         string
	EmployeeID string
	CheckIn    time.Time
	CheckOut   *time.Time
	Date       string
	TotalHours *float64
	CreatedAt  time.Time
}
