// Package timesheet computes the derived time-tracking values: per-entry
// durations, the pinned entry date, and the monthly/daily rollups. All
// functions are pure; storage access stays in the services.
package timesheet

import (
	"fmt"
	"sort"
	"time"

	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/report"
	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/timeentry"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
	clockLayout = "15:04"
)

// Hours returns the worked duration in hours, or nil while the entry is
// still open. A check-out before the check-in yields a negative value; the
// engine does not reject it.
func Hours(checkIn time.Time, checkOut *time.Time) *float64 {
	if checkOut == nil {
		return nil
	}
	h := checkOut.Sub(checkIn).Seconds() / 3600
	return &h
}

// EntryDate derives the calendar day key for a check-in. The value is fixed
// at entry creation and survives later edits of the check-in timestamp.
func EntryDate(checkIn time.Time) string {
	return checkIn.Format(dateLayout)
}

// MonthKey extracts the "YYYY-MM" grouping key from a stored entry date.
func MonthKey(date string) string {
	if len(date) < len(monthLayout) {
		return date
	}
	return date[:len(monthLayout)]
}

// MonthRange returns the half-open ["YYYY-MM-01", next month "-01") date
// window for a month. The fixed-width zero-padded format makes lexical
// comparison on the stored date column equivalent to chronological order.
func MonthRange(year, month int) (from, to string) {
	from = fmt.Sprintf("%04d-%02d-01", year, month)
	if month == 12 {
		to = fmt.Sprintf("%04d-01-01", year+1)
	} else {
		to = fmt.Sprintf("%04d-%02d-01", year, month+1)
	}
	return from, to
}

// SumHours totals the closed entries in a slice; open entries count as zero.
func SumHours(entries []timeentry.TimeEntry) float64 {
	var total float64
	for _, e := range entries {
		if e.TotalHours != nil {
			total += *e.TotalHours
		}
	}
	return total
}

// MonthlySummaries groups an employee's entries by the month prefix of their
// stored date, summing hours and counting distinct days, newest month first.
func MonthlySummaries(employeeID, employeeName string, entries []timeentry.TimeEntry) []report.MonthSummary {
	type bucket struct {
		totalHours float64
		days       map[string]struct{}
	}
	buckets := make(map[string]*bucket)

	for _, e := range entries {
		key := MonthKey(e.Date)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{days: make(map[string]struct{})}
			buckets[key] = b
		}
		if e.TotalHours != nil {
			b.totalHours += *e.TotalHours
		}
		b.days[e.Date] = struct{}{}
	}

	summaries := make([]report.MonthSummary, 0, len(buckets))
	for key, b := range buckets {
		year := 0
		fmt.Sscanf(key, "%d", &year)
		summaries = append(summaries, report.MonthSummary{
			EmployeeID:   employeeID,
			EmployeeName: employeeName,
			Month:        key,
			Year:         year,
			TotalHours:   b.totalHours,
			DaysWorked:   len(b.days),
		})
	}

	// Lexical descending on "YYYY-MM" is chronological descending.
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Month > summaries[j].Month
	})
	return summaries
}

// DayDetails renders one row per entry with wall-clock times in the stored
// zone, ordered ascending by date.
func DayDetails(employeeID, employeeName string, entries []timeentry.TimeEntry) []report.DayDetail {
	details := make([]report.DayDetail, 0, len(entries))
	for _, e := range entries {
		var checkOut *string
		if e.CheckOut != nil {
			s := e.CheckOut.Format(clockLayout)
			checkOut = &s
		}
		details = append(details, report.DayDetail{
			EmployeeID:   employeeID,
			EmployeeName: employeeName,
			Date:         e.Date,
			CheckIn:      e.CheckIn.Format(clockLayout),
			CheckOut:     checkOut,
			TotalHours:   e.TotalHours,
		})
	}

	sort.Slice(details, func(i, j int) bool {
		return details[i].Date < details[j].Date
	})
	return details
}
