package policy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/user"
)

func strPtr(s string) *string { return &s }

func rolePtr(r user.Role) *user.Role { return &r }

func owner() Caller {
	return Caller{UserID: "owner-1", Role: user.RoleOwner}
}

func admin(companyID string) Caller {
	return Caller{UserID: "admin-1", Role: user.RoleAdmin, CompanyID: &companyID}
}

func regular(companyID string) Caller {
	return Caller{UserID: "user-1", Role: user.RoleUser, CompanyID: &companyID}
}

func requireDenial(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	var denial *Denial
	require.True(t, errors.As(err, &denial), "expected a denial, got %v", err)
	assert.Equal(t, reason, denial.Reason)
}

func TestCanManageCompanies(t *testing.T) {
	assert.NoError(t, CanManageCompanies(owner()))
	requireDenial(t, CanManageCompanies(admin("c1")), ReasonAccessDenied)
	requireDenial(t, CanManageCompanies(regular("c1")), ReasonAccessDenied)
	requireDenial(t, CanManageCompanies(Caller{Role: "superuser"}), ReasonAccessDenied)
}

func TestUserListScope(t *testing.T) {
	scope, err := UserListScope(owner())
	require.NoError(t, err)
	assert.True(t, scope.All)

	scope, err = UserListScope(admin("c1"))
	require.NoError(t, err)
	assert.False(t, scope.All)
	assert.Equal(t, "c1", scope.CompanyID)

	_, err = UserListScope(regular("c1"))
	requireDenial(t, err, ReasonAccessDenied)

	// Admin without a company binding cannot be scoped to anything.
	_, err = UserListScope(Caller{UserID: "admin-x", Role: user.RoleAdmin})
	requireDenial(t, err, ReasonAccessDenied)
}

func TestAuthorizeUserCreate(t *testing.T) {
	t.Run("owner creates anywhere with any role", func(t *testing.T) {
		companyID, err := AuthorizeUserCreate(owner(), user.RoleAdmin, strPtr("c2"))
		require.NoError(t, err)
		assert.Equal(t, "c2", *companyID)

		companyID, err = AuthorizeUserCreate(owner(), user.RoleOwner, nil)
		require.NoError(t, err)
		assert.Nil(t, companyID)
	})

	t.Run("admin defaults missing company to own", func(t *testing.T) {
		companyID, err := AuthorizeUserCreate(admin("c1"), user.RoleUser, nil)
		require.NoError(t, err)
		assert.Equal(t, "c1", *companyID)
	})

	t.Run("admin may target own company explicitly", func(t *testing.T) {
		companyID, err := AuthorizeUserCreate(admin("c1"), user.RoleUser, strPtr("c1"))
		require.NoError(t, err)
		assert.Equal(t, "c1", *companyID)
	})

	t.Run("admin cannot create for another company", func(t *testing.T) {
		_, err := AuthorizeUserCreate(admin("c1"), user.RoleUser, strPtr("c2"))
		requireDenial(t, err, ReasonCrossCompanyUserCreate)
	})

	t.Run("admin cannot mint owners", func(t *testing.T) {
		_, err := AuthorizeUserCreate(admin("c1"), user.RoleOwner, nil)
		requireDenial(t, err, ReasonOwnerRoleRestricted)
	})

	t.Run("regular user cannot create", func(t *testing.T) {
		_, err := AuthorizeUserCreate(regular("c1"), user.RoleUser, nil)
		requireDenial(t, err, ReasonAccessDenied)
	})
}

func TestAuthorizeUserUpdate(t *testing.T) {
	sameCompanyUser := user.User{ID: "u2", Role: user.RoleUser, CompanyID: strPtr("c1")}
	otherCompanyUser := user.User{ID: "u3", Role: user.RoleUser, CompanyID: strPtr("c2")}
	ownerAccount := user.User{ID: "u4", Role: user.RoleOwner, CompanyID: strPtr("c1")}

	t.Run("owner updates anyone", func(t *testing.T) {
		assert.NoError(t, AuthorizeUserUpdate(owner(), otherCompanyUser, user.UpdateUserRequest{}))
		assert.NoError(t, AuthorizeUserUpdate(owner(), ownerAccount, user.UpdateUserRequest{}))
	})

	t.Run("admin updates same-company user", func(t *testing.T) {
		assert.NoError(t, AuthorizeUserUpdate(admin("c1"), sameCompanyUser, user.UpdateUserRequest{}))
	})

	t.Run("admin cannot reach other companies", func(t *testing.T) {
		err := AuthorizeUserUpdate(admin("c1"), otherCompanyUser, user.UpdateUserRequest{})
		requireDenial(t, err, ReasonCrossCompanyUserUpdate)
	})

	t.Run("admin cannot touch owner accounts", func(t *testing.T) {
		err := AuthorizeUserUpdate(admin("c1"), ownerAccount, user.UpdateUserRequest{})
		requireDenial(t, err, ReasonOwnerAccountImmutable)
	})

	t.Run("admin cannot promote to owner", func(t *testing.T) {
		patch := user.UpdateUserRequest{Role: rolePtr(user.RoleOwner)}
		err := AuthorizeUserUpdate(admin("c1"), sameCompanyUser, patch)
		requireDenial(t, err, ReasonOwnerRoleRestricted)
	})

	t.Run("admin cannot reassign to another company", func(t *testing.T) {
		patch := user.UpdateUserRequest{CompanyID: strPtr("c2")}
		err := AuthorizeUserUpdate(admin("c1"), sameCompanyUser, patch)
		requireDenial(t, err, ReasonCrossCompanyAssign)
	})

	t.Run("regular user cannot update", func(t *testing.T) {
		err := AuthorizeUserUpdate(regular("c1"), sameCompanyUser, user.UpdateUserRequest{})
		requireDenial(t, err, ReasonAccessDenied)
	})
}

func TestAuthorizeUserDelete(t *testing.T) {
	sameCompanyUser := user.User{ID: "u2", Role: user.RoleUser, CompanyID: strPtr("c1")}
	otherCompanyUser := user.User{ID: "u3", Role: user.RoleUser, CompanyID: strPtr("c2")}
	ownerAccount := user.User{ID: "u4", Role: user.RoleOwner}

	t.Run("owner deletes others", func(t *testing.T) {
		assert.NoError(t, AuthorizeUserDelete(owner(), sameCompanyUser))
	})

	t.Run("self-delete denied for owner", func(t *testing.T) {
		caller := owner()
		err := AuthorizeUserDelete(caller, user.User{ID: caller.UserID, Role: user.RoleOwner})
		requireDenial(t, err, ReasonSelfDelete)
	})

	t.Run("self-delete denied for admin", func(t *testing.T) {
		caller := admin("c1")
		target := user.User{ID: caller.UserID, Role: user.RoleAdmin, CompanyID: strPtr("c1")}
		err := AuthorizeUserDelete(caller, target)
		requireDenial(t, err, ReasonSelfDelete)
	})

	t.Run("admin cannot delete across companies", func(t *testing.T) {
		err := AuthorizeUserDelete(admin("c1"), otherCompanyUser)
		requireDenial(t, err, ReasonCrossCompanyUserDelete)
	})

	t.Run("admin cannot delete owner accounts", func(t *testing.T) {
		err := AuthorizeUserDelete(admin("c1"), user.User{ID: "u4", Role: user.RoleOwner, CompanyID: strPtr("c1")})
		requireDenial(t, err, ReasonOwnerAccountDelete)
	})

	t.Run("unbound owner account is out of admin reach", func(t *testing.T) {
		err := AuthorizeUserDelete(admin("c1"), ownerAccount)
		requireDenial(t, err, ReasonCrossCompanyUserDelete)
	})

	t.Run("regular user cannot delete", func(t *testing.T) {
		err := AuthorizeUserDelete(regular("c1"), sameCompanyUser)
		requireDenial(t, err, ReasonAccessDenied)
	})
}

func TestEmployeeListScope(t *testing.T) {
	scope, err := EmployeeListScope(owner())
	require.NoError(t, err)
	assert.True(t, scope.All)

	for _, caller := range []Caller{admin("c1"), regular("c1")} {
		scope, err = EmployeeListScope(caller)
		require.NoError(t, err)
		assert.Equal(t, "c1", scope.CompanyID)
	}

	_, err = EmployeeListScope(Caller{Role: "intruder"})
	requireDenial(t, err, ReasonAccessDenied)
}

func TestCanManageEmployees(t *testing.T) {
	assert.NoError(t, CanManageEmployees(owner()))
	assert.NoError(t, CanManageEmployees(admin("c1")))
	requireDenial(t, CanManageEmployees(regular("c1")), ReasonAccessDenied)
}

func TestAuthorizeTimeEntryCreate(t *testing.T) {
	assert.NoError(t, AuthorizeTimeEntryCreate(owner(), "c2"))
	assert.NoError(t, AuthorizeTimeEntryCreate(admin("c1"), "c1"))
	requireDenial(t, AuthorizeTimeEntryCreate(admin("c1"), "c2"), ReasonCrossCompanyEntry)
	requireDenial(t, AuthorizeTimeEntryCreate(regular("c1"), "c1"), ReasonAccessDenied)
}

func TestReportScope(t *testing.T) {
	scope, err := ReportScope(owner())
	require.NoError(t, err)
	assert.True(t, scope.All)

	scope, err = ReportScope(admin("c1"))
	require.NoError(t, err)
	assert.Equal(t, "c1", scope.CompanyID)

	_, err = ReportScope(regular("c1"))
	requireDenial(t, err, ReasonAccessDenied)
}

func TestAuthorizeEmployeeReport(t *testing.T) {
	assert.NoError(t, AuthorizeEmployeeReport(owner(), "c2"))
	assert.NoError(t, AuthorizeEmployeeReport(admin("c1"), "c1"))
	requireDenial(t, AuthorizeEmployeeReport(admin("c1"), "c2"), ReasonForeignEmployee)
	requireDenial(t, AuthorizeEmployeeReport(regular("c1"), "c1"), ReasonAccessDenied)
}
