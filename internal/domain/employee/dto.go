package employee

import (
	"time"

	"github.com/timetracker-pro/timetracker-backend-go/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	QRCode    string    `json:"qr_code"`
	CompanyID string    `json:"company_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (e *Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		QRCode:    e.QRCode,
		CompanyID: e.CompanyID,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
	}
}

type CreateEmployeeRequest struct {
	Name      string `json:"name"`
	CompanyID string `json:"company_id"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest is a partial patch: only non-nil fields overwrite.
// The QR code and company binding are immutable after creation.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// QRCodeResponse carries the employee's QR payload together with its rendered
// PNG, base64 encoded for embedding in JSON.
type QRCodeResponse struct {
	QRCodeData  string `json:"qr_code_data"`
	QRCodeImage string `json:"qr_code_image"`
}
