package company

import "time"

// Company is the tenant boundary: users, employees and time entries are all
// scoped to exactly one company. Deleting a company does not cascade.
type Company struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
