// Package policy is the access decision engine. Every rule is a pure function
// of the caller's identity and the target's state; nothing in here reads or
// writes storage. Roles are a closed set and every switch carries a deny
// default, so an unrecognized role string can never reach an allow path.
package policy

import (
	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/user"
)

// Caller is the authenticated identity an operation is evaluated against.
type Caller struct {
	UserID    string
	Role      user.Role
	CompanyID *string
}

// Denial is a terminal authorization failure with a stable reason.
type Denial struct {
	Reason string
}

func (d *Denial) Error() string {
	return d.Reason
}

func deny(reason string) error {
	return &Denial{Reason: reason}
}

// Denial reasons. These are part of the API surface: clients match on them.
const (
	ReasonAccessDenied           = "access denied"
	ReasonCrossCompanyUserCreate = "cannot create users for other companies"
	ReasonOwnerRoleRestricted    = "cannot create owner accounts"
	ReasonCrossCompanyUserUpdate = "cannot update users from other companies"
	ReasonOwnerAccountImmutable  = "cannot update owner accounts"
	ReasonCrossCompanyAssign     = "cannot assign users to other companies"
	ReasonCrossCompanyUserDelete = "cannot delete users from other companies"
	ReasonOwnerAccountDelete     = "cannot delete owner accounts"
	ReasonSelfDelete             = "cannot delete yourself"
	ReasonCrossCompanyEntry      = "cannot create time entries for employees from other companies"
	ReasonForeignEmployee        = "access denied to this employee"
)

// ListScope describes how a list operation must be filtered for the caller.
type ListScope struct {
	All       bool
	CompanyID string
}

func (c Caller) ownCompany() (string, bool) {
	if c.CompanyID == nil {
		return "", false
	}
	return *c.CompanyID, true
}

// Companies

// CanManageCompanies gates list/create/update/delete on the companies
// collection. Owner only; there is no company scoping at this level.
func CanManageCompanies(caller Caller) error {
	if caller.Role == user.RoleOwner {
		return nil
	}
	return deny(ReasonAccessDenied)
}

// Users

// UserListScope decides visibility over the users collection.
func UserListScope(caller Caller) (ListScope, error) {
	switch caller.Role {
	case user.RoleOwner:
		return ListScope{All: true}, nil
	case user.RoleAdmin:
		companyID, ok := caller.ownCompany()
		if !ok {
			return ListScope{}, deny(ReasonAccessDenied)
		}
		return ListScope{CompanyID: companyID}, nil
	default:
		return ListScope{}, deny(ReasonAccessDenied)
	}
}

// AuthorizeUserCreate validates the caller may create a user with the
// requested role/company and returns the company the new user must be bound
// to. For admins a missing company defaults to their own; an explicitly
// different one is denied, as is minting another owner.
func AuthorizeUserCreate(caller Caller, role user.Role, companyID *string) (*string, error) {
	switch caller.Role {
	case user.RoleOwner:
		return companyID, nil
	case user.RoleAdmin:
		own, ok := caller.ownCompany()
		if !ok {
			return nil, deny(ReasonAccessDenied)
		}
		if role == user.RoleOwner {
			return nil, deny(ReasonOwnerRoleRestricted)
		}
		if companyID == nil {
			return &own, nil
		}
		if *companyID != own {
			return nil, deny(ReasonCrossCompanyUserCreate)
		}
		return companyID, nil
	default:
		return nil, deny(ReasonAccessDenied)
	}
}

// AuthorizeUserUpdate checks a patch against an existing user. The caller of
// this function must already have established that the target exists: a
// missing target is NotFound, never a denial.
func AuthorizeUserUpdate(caller Caller, target user.User, patch user.UpdateUserRequest) error {
	switch caller.Role {
	case user.RoleOwner:
		return nil
	case user.RoleAdmin:
		own, ok := caller.ownCompany()
		if !ok {
			return deny(ReasonAccessDenied)
		}
		if !target.SameCompany(&own) {
			return deny(ReasonCrossCompanyUserUpdate)
		}
		if target.IsOwner() {
			return deny(ReasonOwnerAccountImmutable)
		}
		if patch.Role != nil && *patch.Role == user.RoleOwner {
			return deny(ReasonOwnerRoleRestricted)
		}
		if patch.CompanyID != nil && *patch.CompanyID != own {
			return deny(ReasonCrossCompanyAssign)
		}
		return nil
	default:
		return deny(ReasonAccessDenied)
	}
}

// AuthorizeUserDelete checks deletion of an existing user. Self-deletion is
// denied for every role that can delete at all.
func AuthorizeUserDelete(caller Caller, target user.User) error {
	switch caller.Role {
	case user.RoleOwner:
		if target.ID == caller.UserID {
			return deny(ReasonSelfDelete)
		}
		return nil
	case user.RoleAdmin:
		own, ok := caller.ownCompany()
		if !ok {
			return deny(ReasonAccessDenied)
		}
		if !target.SameCompany(&own) {
			return deny(ReasonCrossCompanyUserDelete)
		}
		if target.IsOwner() {
			return deny(ReasonOwnerAccountDelete)
		}
		if target.ID == caller.UserID {
			return deny(ReasonSelfDelete)
		}
		return nil
	default:
		return deny(ReasonAccessDenied)
	}
}

// Employees

// EmployeeListScope decides visibility over the employees collection. All
// three roles may list; admin and user see only their own company.
func EmployeeListScope(caller Caller) (ListScope, error) {
	switch caller.Role {
	case user.RoleOwner:
		return ListScope{All: true}, nil
	case user.RoleAdmin, user.RoleUser:
		companyID, ok := caller.ownCompany()
		if !ok {
			return ListScope{}, deny(ReasonAccessDenied)
		}
		return ListScope{CompanyID: companyID}, nil
	default:
		return ListScope{}, deny(ReasonAccessDenied)
	}
}

// CanManageEmployees gates employee create/update/delete and QR generation.
// Update and delete intentionally carry no additional company-ownership
// check; see the open-questions section of DESIGN.md.
func CanManageEmployees(caller Caller) error {
	switch caller.Role {
	case user.RoleOwner, user.RoleAdmin:
		return nil
	default:
		return deny(ReasonAccessDenied)
	}
}

// Time entries

// TimeEntryListScope decides visibility over time entries. A company scope
// means: resolve the company's employee set first, then keep only entries
// belonging to those employees.
func TimeEntryListScope(caller Caller) (ListScope, error) {
	return EmployeeListScope(caller)
}

// AuthorizeTimeEntryCreate checks entry creation against the owning company
// of the target employee.
func AuthorizeTimeEntryCreate(caller Caller, employeeCompanyID string) error {
	switch caller.Role {
	case user.RoleOwner:
		return nil
	case user.RoleAdmin:
		own, ok := caller.ownCompany()
		if !ok || own != employeeCompanyID {
			return deny(ReasonCrossCompanyEntry)
		}
		return nil
	default:
		return deny(ReasonAccessDenied)
	}
}

// CanManageTimeEntries gates entry update/delete. Like employees, these paths
// carry no company-ownership check beyond the role gate.
func CanManageTimeEntries(caller Caller) error {
	switch caller.Role {
	case user.RoleOwner, user.RoleAdmin:
		return nil
	default:
		return deny(ReasonAccessDenied)
	}
}

// Reports

// ReportScope decides which employees a summary report covers.
func ReportScope(caller Caller) (ListScope, error) {
	switch caller.Role {
	case user.RoleOwner:
		return ListScope{All: true}, nil
	case user.RoleAdmin:
		companyID, ok := caller.ownCompany()
		if !ok {
			return ListScope{}, deny(ReasonAccessDenied)
		}
		return ListScope{CompanyID: companyID}, nil
	default:
		return ListScope{}, deny(ReasonAccessDenied)
	}
}

// AuthorizeEmployeeReport checks per-employee month/day breakdowns against
// the employee's owning company.
func AuthorizeEmployeeReport(caller Caller, employeeCompanyID string) error {
	switch caller.Role {
	case user.RoleOwner:
		return nil
	case user.RoleAdmin:
		own, ok := caller.ownCompany()
		if !ok || own != employeeCompanyID {
			return deny(ReasonForeignEmployee)
		}
		return nil
	default:
		return deny(ReasonAccessDenied)
	}
}
