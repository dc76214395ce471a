package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/company"
	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/user"
	"github.com/timetracker-pro/timetracker-backend-go/internal/policy"
)

func strPtr(s string) *string        { return &s }
func rolePtr(r user.Role) *user.Role { return &r }

type fakeUserRepo struct {
	users   map[string]user.User // keyed by id
	deleted []string
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	out := make([]user.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) ListByCompany(ctx context.Context, companyID string) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.CompanyID != nil && *u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := f.GetByUsername(ctx, username)
	return err == nil, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	f.users[newUser.ID] = newUser
	return newUser, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, fields user.UpdateUserFields) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	if fields.Username != nil {
		u.Username = *fields.Username
	}
	if fields.PasswordHash != nil {
		u.PasswordHash = *fields.PasswordHash
	}
	if fields.Role != nil {
		u.Role = *fields.Role
	}
	if fields.CompanyID != nil {
		u.CompanyID = fields.CompanyID
	}
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.users, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeCompanyRepo struct {
	companies map[string]company.Company
}

func (f *fakeCompanyRepo) List(ctx context.Context) ([]company.Company, error) { return nil, nil }
func (f *fakeCompanyRepo) GetByID(ctx context.Context, id string) (company.Company, error) {
	co, ok := f.companies[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return co, nil
}
func (f *fakeCompanyRepo) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	return newCompany, nil
}
func (f *fakeCompanyRepo) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) error {
	return nil
}
func (f *fakeCompanyRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestService() (Service, *fakeUserRepo) {
	userRepo := &fakeUserRepo{users: map[string]user.User{}}
	companyRepo := &fakeCompanyRepo{companies: map[string]company.Company{
		"c1": {ID: "c1", Name: "Firma ABC"},
		"c2": {ID: "c2", Name: "Firma XYZ"},
	}}
	return NewUserService(userRepo, companyRepo), userRepo
}

func ownerCaller() policy.Caller {
	return policy.Caller{UserID: "owner-1", Role: user.RoleOwner}
}

func adminCaller(companyID string) policy.Caller {
	return policy.Caller{UserID: "admin-1", Role: user.RoleAdmin, CompanyID: &companyID}
}

func TestListScoping(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	repo.users["u1"] = user.User{ID: "u1", Username: "a", Role: user.RoleUser, CompanyID: strPtr("c1")}
	repo.users["u2"] = user.User{ID: "u2", Username: "b", Role: user.RoleUser, CompanyID: strPtr("c2")}
	repo.users["u3"] = user.User{ID: "u3", Username: "o", Role: user.RoleOwner}

	all, err := svc.List(ctx, ownerCaller())
	require.NoError(t, err)
	assert.Len(t, all, 3)

	scoped, err := svc.List(ctx, adminCaller("c1"))
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, "u1", scoped[0].ID)
	require.NotNil(t, scoped[0].CompanyName)
	assert.Equal(t, "Firma ABC", *scoped[0].CompanyName)

	_, err = svc.List(ctx, policy.Caller{UserID: "user-1", Role: user.RoleUser, CompanyID: strPtr("c1")})
	var denial *policy.Denial
	assert.ErrorAs(t, err, &denial)
}

func TestCreateHashesPassword(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Create(context.Background(), ownerCaller(), user.CreateUserRequest{
		Username:  "newuser",
		Password:  "secret123",
		Role:      user.RoleUser,
		CompanyID: strPtr("c1"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "newuser", resp.Username)

	stored := repo.users[resp.ID]
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestCreateAdminDefaultsToOwnCompany(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Create(context.Background(), adminCaller("c1"), user.CreateUserRequest{
		Username: "colleague",
		Password: "secret123",
		Role:     user.RoleUser,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.CompanyID)
	assert.Equal(t, "c1", *resp.CompanyID)
	require.NotNil(t, repo.users[resp.ID].CompanyID)
	assert.Equal(t, "c1", *repo.users[resp.ID].CompanyID)
}

func TestCreateAdminCrossCompanyDenied(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Create(context.Background(), adminCaller("c1"), user.CreateUserRequest{
		Username:  "infiltrator",
		Password:  "secret123",
		Role:      user.RoleUser,
		CompanyID: strPtr("c2"),
	})
	var denial *policy.Denial
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, policy.ReasonCrossCompanyUserCreate, denial.Reason)
	assert.Empty(t, repo.users)
}

func TestCreateDuplicateUsername(t *testing.T) {
	svc, repo := newTestService()
	repo.users["u1"] = user.User{ID: "u1", Username: "taken", Role: user.RoleUser, CompanyID: strPtr("c1")}

	_, err := svc.Create(context.Background(), ownerCaller(), user.CreateUserRequest{
		Username:  "taken",
		Password:  "secret123",
		Role:      user.RoleUser,
		CompanyID: strPtr("c1"),
	})
	assert.ErrorIs(t, err, user.ErrUsernameExists)
}

func TestUpdateMissingTargetIsNotFound(t *testing.T) {
	svc, _ := newTestService()

	// NotFound wins over any authorization outcome: the target is resolved
	// before the policy check runs.
	_, err := svc.Update(context.Background(), policy.Caller{Role: user.RoleUser}, "ghost", user.UpdateUserRequest{
		Username: strPtr("renamed"),
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdateRehashesPassword(t *testing.T) {
	svc, repo := newTestService()
	repo.users["u1"] = user.User{ID: "u1", Username: "a", Role: user.RoleUser, CompanyID: strPtr("c1")}

	_, err := svc.Update(context.Background(), ownerCaller(), "u1", user.UpdateUserRequest{
		Password: strPtr("newpass1"),
	})
	require.NoError(t, err)

	stored := repo.users["u1"]
	assert.NotEqual(t, "newpass1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpass1")))
}

func TestUpdateAdminCannotPromoteToOwner(t *testing.T) {
	svc, repo := newTestService()
	repo.users["u1"] = user.User{ID: "u1", Username: "a", Role: user.RoleUser, CompanyID: strPtr("c1")}

	_, err := svc.Update(context.Background(), adminCaller("c1"), "u1", user.UpdateUserRequest{
		Role: rolePtr(user.RoleOwner),
	})
	var denial *policy.Denial
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, policy.ReasonOwnerRoleRestricted, denial.Reason)
	assert.Equal(t, user.RoleUser, repo.users["u1"].Role)
}

func TestDeleteSelfDenied(t *testing.T) {
	svc, repo := newTestService()
	caller := ownerCaller()
	repo.users[caller.UserID] = user.User{ID: caller.UserID, Username: "owner", Role: user.RoleOwner}

	err := svc.Delete(context.Background(), caller, caller.UserID)
	var denial *policy.Denial
	require.ErrorAs(t, err, &denial)
	assert.Equal(t, policy.ReasonSelfDelete, denial.Reason)
	assert.Contains(t, repo.users, caller.UserID)
}

func TestDelete(t *testing.T) {
	svc, repo := newTestService()
	repo.users["u1"] = user.User{ID: "u1", Username: "a", Role: user.RoleUser, CompanyID: strPtr("c1")}

	require.NoError(t, svc.Delete(context.Background(), adminCaller("c1"), "u1"))
	assert.Equal(t, []string{"u1"}, repo.deleted)
}
