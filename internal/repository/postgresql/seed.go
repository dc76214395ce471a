package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/user"
	"github.com/timetracker-pro/timetracker-backend-go/internal/pkg/database"
	"github.com/timetracker-pro/timetracker-backend-go/internal/timesheet"
)

// EnsureSchema creates the four collections if they do not exist yet. The
// store is used document-style: string ids, application-side referential
// guards, and a text date column for lexical range filtering.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS companies (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL,
			company_id    TEXT,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			qr_code    TEXT NOT NULL UNIQUE,
			company_id TEXT NOT NULL,
			is_active  BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS time_entries (
			id          TEXT PRIMARY KEY,
			employee_id TEXT NOT NULL,
			check_in    TIMESTAMPTZ NOT NULL,
			check_out   TIMESTAMPTZ,
			date        TEXT NOT NULL,
			total_hours DOUBLE PRECISION,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_time_entries_employee_date ON time_entries (employee_id, date)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// SeedDefaultData installs the demo accounts and sample records on first
// start. A no-op when the owner account already exists.
func SeedDefaultData(ctx context.Context, db *database.DB) error {
	var ownerExists bool
	err := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = 'owner')`).Scan(&ownerExists)
	if err != nil {
		return fmt.Errorf("check owner account: %w", err)
	}
	if ownerExists {
		return nil
	}

	hash := func(plaintext string) (string, error) {
		h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
		return string(h), err
	}

	ownerHash, err := hash("owner123")
	if err != nil {
		return err
	}
	adminHash, err := hash("admin123")
	if err != nil {
		return err
	}
	userHash, err := hash("user123")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	companyABC := "1"

	return WithTransaction(ctx, db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, db)

		companies := []struct{ id, name string }{
			{"1", "Firma ABC"},
			{"2", "Firma XYZ"},
		}
		for _, c := range companies {
			if _, err := q.Exec(txCtx,
				`INSERT INTO companies (id, name, created_at) VALUES ($1, $2, $3)`,
				c.id, c.name, now); err != nil {
				return fmt.Errorf("seed company %s: %w", c.name, err)
			}
		}

		seedUsers := []struct {
			username, passwordHash string
			role                   user.Role
			companyID              *string
		}{
			{"owner", ownerHash, user.RoleOwner, nil},
			{"admin", adminHash, user.RoleAdmin, &companyABC},
			{"user", userHash, user.RoleUser, &companyABC},
		}
		for _, u := range seedUsers {
			if _, err := q.Exec(txCtx,
				`INSERT INTO users (id, username, password_hash, role, company_id, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				uuid.NewString(), u.username, u.passwordHash, u.role, u.companyID, now); err != nil {
				return fmt.Errorf("seed user %s: %w", u.username, err)
			}
		}

		employees := []struct{ id, name, qrCode string }{
			{"1", "Jan Kowalski", "QR-EMP-001"},
			{"2", "Anna Nowak", "QR-EMP-002"},
		}
		for _, e := range employees {
			if _, err := q.Exec(txCtx,
				`INSERT INTO employees (id, name, qr_code, company_id, is_active, created_at)
				 VALUES ($1, $2, $3, $4, TRUE, $5)`,
				e.id, e.name, e.qrCode, companyABC, now); err != nil {
				return fmt.Errorf("seed employee %s: %w", e.name, err)
			}
		}

		// One closed 8h entry per employee for today.
		shifts := []struct {
			employeeID string
			startHour  int
		}{
			{"1", 8},
			{"2", 9},
		}
		for _, s := range shifts {
			checkIn := time.Date(now.Year(), now.Month(), now.Day(), s.startHour, 0, 0, 0, time.UTC)
			checkOut := checkIn.Add(8 * time.Hour)
			if _, err := q.Exec(txCtx,
				`INSERT INTO time_entries (id, employee_id, check_in, check_out, date, total_hours, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				uuid.NewString(), s.employeeID, checkIn, checkOut,
				timesheet.EntryDate(checkIn), 8.0, now); err != nil {
				return fmt.Errorf("seed time entry for employee %s: %w", s.employeeID, err)
			}
		}

		return nil
	})
}
