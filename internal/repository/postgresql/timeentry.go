package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/timeentry"
	"github.com/timetracker-pro/timetracker-backend-go/internal/pkg/database"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

const timeEntryColumns = `id, employee_id, check_in, check_out, date, total_hours, created_at`

// List implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) List(ctx context.Context) ([]timeentry.TimeEntry, error) {
	return r.listWhere(ctx, "", nil)
}

// ListByEmployees implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) ListByEmployees(ctx context.Context, employeeIDs []string) ([]timeentry.TimeEntry, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	return r.listWhere(ctx, "WHERE employee_id = ANY($1)", []interface{}{employeeIDs})
}

// ListByEmployee implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]timeentry.TimeEntry, error) {
	return r.listWhere(ctx, "WHERE employee_id = $1", []interface{}{employeeID})
}

// ListByEmployeeDateRange implements timeentry.TimeEntryRepository. The date
// column holds fixed-width "YYYY-MM-DD" strings, so the lexical comparison
// below is a correct chronological range filter.
func (r *timeEntryRepositoryImpl) ListByEmployeeDateRange(ctx context.Context, employeeID, dateFrom, dateTo string) ([]timeentry.TimeEntry, error) {
	return r.listWhere(ctx,
		"WHERE employee_id = $1 AND date >= $2 AND date < $3",
		[]interface{}{employeeID, dateFrom, dateTo})
}

func (r *timeEntryRepositoryImpl) listWhere(ctx context.Context, where string, args []interface{}) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM time_entries %s ORDER BY created_at LIMIT 1000`, timeEntryColumns, where)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		var e timeentry.TimeEntry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.CheckIn, &e.CheckOut, &e.Date, &e.TotalHours, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetByID implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetByID(ctx context.Context, id string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	var e timeentry.TimeEntry
	err := q.QueryRow(ctx, `SELECT `+timeEntryColumns+` FROM time_entries WHERE id = $1`, id).
		Scan(&e.ID, &e.EmployeeID, &e.CheckIn, &e.CheckOut, &e.Date, &e.TotalHours, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.TimeEntry{}, timeentry.ErrTimeEntryNotFound
		}
		return timeentry.TimeEntry{}, err
	}
	return e, nil
}

// Create implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Create(ctx context.Context, newEntry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_entries (id, employee_id, check_in, check_out, date, total_hours, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + timeEntryColumns

	var created timeentry.TimeEntry
	err := q.QueryRow(ctx, query,
		newEntry.ID, newEntry.EmployeeID, newEntry.CheckIn, newEntry.CheckOut,
		newEntry.Date, newEntry.TotalHours, newEntry.CreatedAt).
		Scan(&created.ID, &created.EmployeeID, &created.CheckIn, &created.CheckOut,
			&created.Date, &created.TotalHours, &created.CreatedAt)
	if err != nil {
		return timeentry.TimeEntry{}, err
	}
	return created, nil
}

// Update implements timeentry.TimeEntryRepository. The date column is never
// touched here: it stays pinned to the original check-in day.
func (r *timeEntryRepositoryImpl) Update(ctx context.Context, id string, fields timeentry.UpdateTimeEntryFields) error {
	q := GetQuerier(ctx, r.db)

	setClauses := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	i := 1
	add := func(col string, val interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	if fields.CheckIn != nil {
		add("check_in", *fields.CheckIn)
	}
	if fields.CheckOut != nil {
		add("check_out", *fields.CheckOut)
	}
	if fields.HoursKnown {
		add("total_hours", fields.TotalHours)
	}

	if len(setClauses) == 0 {
		return nil
	}

	sql := "UPDATE time_entries SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d RETURNING id", i)
	args = append(args, id)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timeentry.ErrTimeEntryNotFound
		}
		return fmt.Errorf("update time entry %s: %w", id, err)
	}
	return nil
}

// Delete implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete time entry %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrTimeEntryNotFound
	}
	return nil
}
