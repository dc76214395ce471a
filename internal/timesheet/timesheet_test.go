package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/timeentry"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

func tsPtr(value string) *time.Time {
	t := ts(value)
	return &t
}

func hoursPtr(h float64) *float64 { return &h }

func entry(date string, checkIn string, checkOut *string, hours *float64) timeentry.TimeEntry {
	e := timeentry.TimeEntry{
		Date:       date,
		CheckIn:    ts(checkIn),
		TotalHours: hours,
	}
	if checkOut != nil {
		e.CheckOut = tsPtr(*checkOut)
	}
	return e
}

func TestHours(t *testing.T) {
	t.Run("full day", func(t *testing.T) {
		got := Hours(ts("2024-01-15T09:00:00Z"), tsPtr("2024-01-15T17:00:00Z"))
		require.NotNil(t, got)
		assert.InDelta(t, 8.0, *got, 1e-9)
	})

	t.Run("half hours", func(t *testing.T) {
		got := Hours(ts("2024-01-15T09:00:00Z"), tsPtr("2024-01-15T17:30:00Z"))
		require.NotNil(t, got)
		assert.InDelta(t, 8.5, *got, 1e-9)
	})

	t.Run("open entry", func(t *testing.T) {
		assert.Nil(t, Hours(ts("2024-01-15T09:00:00Z"), nil))
	})

	t.Run("inverted pair is not rejected", func(t *testing.T) {
		got := Hours(ts("2024-01-15T17:00:00Z"), tsPtr("2024-01-15T09:00:00Z"))
		require.NotNil(t, got)
		assert.InDelta(t, -8.0, *got, 1e-9)
	})

	t.Run("spans midnight", func(t *testing.T) {
		got := Hours(ts("2024-01-31T22:00:00Z"), tsPtr("2024-02-01T06:00:00Z"))
		require.NotNil(t, got)
		assert.InDelta(t, 8.0, *got, 1e-9)
	})
}

func TestEntryDate(t *testing.T) {
	assert.Equal(t, "2024-01-15", EntryDate(ts("2024-01-15T09:00:00Z")))
	assert.Equal(t, "2024-01-31", EntryDate(ts("2024-01-31T23:59:59Z")))
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-01", MonthKey("2024-01-15"))
	assert.Equal(t, "2024-12", MonthKey("2024-12-01"))
	// Malformed short values fall through untouched.
	assert.Equal(t, "2024", MonthKey("2024"))
}

func TestMonthRange(t *testing.T) {
	from, to := MonthRange(2024, 1)
	assert.Equal(t, "2024-01-01", from)
	assert.Equal(t, "2024-02-01", to)

	from, to = MonthRange(2024, 9)
	assert.Equal(t, "2024-09-01", from)
	assert.Equal(t, "2024-10-01", to)

	// December rolls the year.
	from, to = MonthRange(2024, 12)
	assert.Equal(t, "2024-12-01", from)
	assert.Equal(t, "2025-01-01", to)
}

func TestMonthRangeBoundaries(t *testing.T) {
	from, to := MonthRange(2024, 1)

	// An entry on the last day of the month is inside the window, the first
	// day of the next month is not. Lexical comparison matches chronology on
	// the fixed-width format.
	assert.True(t, "2024-01-31" >= from && "2024-01-31" < to)
	assert.False(t, "2024-02-01" < to)
	assert.False(t, "2023-12-31" >= from)
}

func TestSumHours(t *testing.T) {
	entries := []timeentry.TimeEntry{
		entry("2024-01-15", "2024-01-15T09:00:00Z", nil, hoursPtr(8)),
		entry("2024-01-16", "2024-01-16T09:00:00Z", nil, hoursPtr(7.5)),
		entry("2024-01-17", "2024-01-17T09:00:00Z", nil, nil), // still open
	}
	assert.InDelta(t, 15.5, SumHours(entries), 1e-9)
	assert.Zero(t, SumHours(nil))
}

func TestMonthlySummaries(t *testing.T) {
	entries := []timeentry.TimeEntry{
		entry("2024-01-15", "2024-01-15T09:00:00Z", nil, hoursPtr(8)),
		entry("2024-01-15", "2024-01-15T18:00:00Z", nil, hoursPtr(2)), // same day, second shift
		entry("2024-01-16", "2024-01-16T09:00:00Z", nil, hoursPtr(8)),
		entry("2024-02-01", "2024-02-01T09:00:00Z", nil, hoursPtr(4)),
		entry("2023-12-29", "2023-12-29T09:00:00Z", nil, hoursPtr(6)),
	}

	summaries := MonthlySummaries("emp-1", "Jan Kowalski", entries)
	require.Len(t, summaries, 3)

	// Newest month first.
	assert.Equal(t, "2024-02", summaries[0].Month)
	assert.Equal(t, "2024-01", summaries[1].Month)
	assert.Equal(t, "2023-12", summaries[2].Month)

	jan := summaries[1]
	assert.Equal(t, "emp-1", jan.EmployeeID)
	assert.Equal(t, "Jan Kowalski", jan.EmployeeName)
	assert.Equal(t, 2024, jan.Year)
	assert.InDelta(t, 18.0, jan.TotalHours, 1e-9)
	// Two entries on the 15th still count as one day worked.
	assert.Equal(t, 2, jan.DaysWorked)

	dec := summaries[2]
	assert.Equal(t, 2023, dec.Year)
	assert.Equal(t, 1, dec.DaysWorked)
}

func TestMonthlySummariesEmpty(t *testing.T) {
	summaries := MonthlySummaries("emp-1", "Jan Kowalski", nil)
	assert.Empty(t, summaries)
}

func TestDayDetails(t *testing.T) {
	out1 := "2024-01-16T17:30:00Z"
	entries := []timeentry.TimeEntry{
		entry("2024-01-16", "2024-01-16T09:15:00Z", &out1, hoursPtr(8.25)),
		entry("2024-01-15", "2024-01-15T08:00:00Z", nil, nil),
	}

	details := DayDetails("emp-1", "Anna Nowak", entries)
	require.Len(t, details, 2)

	// Ascending by date regardless of input order.
	assert.Equal(t, "2024-01-15", details[0].Date)
	assert.Equal(t, "2024-01-16", details[1].Date)

	open := details[0]
	assert.Equal(t, "08:00", open.CheckIn)
	assert.Nil(t, open.CheckOut)
	assert.Nil(t, open.TotalHours)

	closed := details[1]
	assert.Equal(t, "09:15", closed.CheckIn)
	require.NotNil(t, closed.CheckOut)
	assert.Equal(t, "17:30", *closed.CheckOut)
	require.NotNil(t, closed.TotalHours)
	assert.InDelta(t, 8.25, *closed.TotalHours, 1e-9)
}
