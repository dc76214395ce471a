package employee

import "time"

type Employee struct {
	ID        string
	Name      string
	QRCode    string // globally unique, generated at creation
	CompanyID string
	IsActive  bool
	CreatedAt time.Time
}
