package response

import (
	"errors"
	"net/http"

	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/auth"
	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/company"
	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/employee"
	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/timeentry"
	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/user"
	"github.com/timetracker-pro/timetracker-backend-go/internal/policy"
	"github.com/timetracker-pro/timetracker-backend-go/internal/pkg/validator"
)

// HandleError maps service-layer errors to HTTP responses. Every handler
// funnels its error path through here so the status codes stay consistent.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var denial *policy.Denial
	if errors.As(err, &denial) {
		Forbidden(w, denial.Reason)
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token has expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid authentication token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrQRCodeExists):
		Conflict(w, "QR code already exists")
	case errors.Is(err, timeentry.ErrTimeEntryNotFound):
		NotFound(w, "Time entry not found")
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
