package user

import (
	"time"

	"github.com/timetracker-pro/timetracker-backend-go/internal/pkg/validator"
)

type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Role        Role      `json:"role"`
	CompanyID   *string   `json:"company_id,omitempty"`
	CompanyName *string   `json:"company_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (u *User) ToResponse(companyName *string) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Role:        u.Role,
		CompanyID:   u.CompanyID,
		CompanyName: companyName,
		CreatedAt:   u.CreatedAt,
	}
}

type CreateUserRequest struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	Role      Role    `json:"role"`
	CompanyID *string `json:"company_id,omitempty"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if len(r.Username) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must not exceed 100 characters",
		})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}
	if !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of owner, admin, user",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateUserRequest is a partial patch: only non-nil fields overwrite.
type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty"`
	Password  *string `json:"password,omitempty"`
	Role      *Role   `json:"role,omitempty"`
	CompanyID *string `json:"company_id,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Username != nil && validator.IsEmpty(*r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must not be empty",
		})
	}
	if r.Password != nil && validator.IsEmpty(*r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not be empty",
		})
	}
	if r.Role != nil && !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of owner, admin, user",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
