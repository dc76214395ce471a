package report

// EmployeeSummary is one employee's accumulated hours for a single month.
type EmployeeSummary struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	TotalHours   float64 `json:"total_hours"`
	Month        string  `json:"current_month"` // "YYYY-MM"
	Year         int     `json:"year"`
}

// MonthSummary is a derived rollup of one employee's entries for one month.
// Never persisted; computed on demand from the time entry set.
type MonthSummary struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Month        string  `json:"month"` // "YYYY-MM"
	Year         int     `json:"year"`
	TotalHours   float64 `json:"total_hours"`
	DaysWorked   int     `json:"days_worked"`
}

// DayDetail is one time entry rendered for the daily breakdown view.
// Check-in/check-out are wall-clock "HH:MM" strings in the stored zone.
type DayDetail struct {
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	Date         string   `json:"date"`
	CheckIn      string   `json:"check_in"`
	CheckOut     *string  `json:"check_out,omitempty"`
	TotalHours   *float64 `json:"total_hours,omitempty"`
}
