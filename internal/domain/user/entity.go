package user

import "time"

type Role string

const (
	RoleOwner Role = "owner" // Platform owner - manages companies and all users
	RoleAdmin Role = "admin" // Company admin - manages own company's users, employees, entries
	RoleUser  Role = "user"  // Regular account - read-only access to own company
)

// Valid reports whether r is one of the known roles. Unknown role strings must
// never fall through to an allow path.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CompanyID    *string // nil for owners, required for admin/user
	CreatedAt    time.Time
}

// IsOwner checks if user is the platform owner
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}

// SameCompany reports whether the user belongs to the given company.
func (u *User) SameCompany(companyID *string) bool {
	if u.CompanyID == nil || companyID == nil {
		return false
	}
	return *u.CompanyID == *companyID
}
