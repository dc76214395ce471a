package user

import "context"

// UpdateUserFields carries the resolved column values for a partial update.
// PasswordHash (not the raw password) is set by the service layer.
type UpdateUserFields struct {
	Username     *string
	PasswordHash *string
	Role         *Role
	CompanyID    *string
}

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	ListByCompany(ctx context.Context, companyID string) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, newUser User) (User, error)
	Update(ctx context.Context, id string, fields UpdateUserFields) error
	Delete(ctx context.Context, id string) error
}
