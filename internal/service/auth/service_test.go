package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/auth"
	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/company"
	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/user"
	"github.com/timetracker-pro/timetracker-backend-go/internal/pkg/jwt"
)

const testSecret = "test-secret-key-for-jwt"

type fakeUserRepo struct {
	users map[string]user.User // keyed by username
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) { return nil, nil }
func (f *fakeUserRepo) ListByCompany(ctx context.Context, companyID string) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	u, ok := f.users[username]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}
func (f *fakeUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, ok := f.users[username]
	return ok, nil
}
func (f *fakeUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	f.users[newUser.Username] = newUser
	return newUser, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, id string, fields user.UpdateUserFields) error {
	return nil
}
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error { return nil }

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
	f.companies[newCompany.ID] = newCompany
	return newCompany, nil
}
func (f *fakeCompanyRepo) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) error {
	return nil
}
func (f *fakeCompanyRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestService(t *testing.T) (auth.AuthService, *fakeUserRepo, *fakeCompanyRepo, jwt.Service) {
	t.Helper()
	userRepo := &fakeUserRepo{users: map[string]user.User{}}
	companyRepo := &fakeCompanyRepo{companies: map[string]company.Company{}}
	jwtService := jwt.NewJWTService(testSecret, "1h")
	return NewAuthService(userRepo, companyRepo, jwtService), userRepo, companyRepo, jwtService
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, password string, role user.Role, companyID *string) user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := user.User{
		ID:           "id-" + username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CompanyID:    companyID,
	}
	repo.users[username] = u
	return u
}

func TestLoginSuccess(t *testing.T) {
	svc, userRepo, companyRepo, jwtService := newTestService(t)
	ctx := context.Background()

	companyID := "company-1"
	companyRepo.companies[companyID] = company.Company{ID: companyID, Name: "Firma ABC"}
	seeded := seedUser(t, userRepo, "admin", "admin123", user.RoleAdmin, &companyID)

	resp, err := svc.Login(ctx, auth.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, seeded.ID, resp.User.ID)
	assert.Equal(t, user.RoleAdmin, resp.User.Role)
	require.NotNil(t, resp.User.CompanyName)
	assert.Equal(t, "Firma ABC", *resp.User.CompanyName)

	// The token must round-trip back to the same user.
	userID, err := jwtService.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, userID)
}

func TestLoginOwnerHasNoCompany(t *testing.T) {
	svc, userRepo, _, _ := newTestService(t)
	seedUser(t, userRepo, "owner", "owner123", user.RoleOwner, nil)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{Username: "owner", Password: "owner123"})
	require.NoError(t, err)
	assert.Nil(t, resp.User.CompanyID)
	assert.Nil(t, resp.User.CompanyName)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, userRepo, _, _ := newTestService(t)
	seedUser(t, userRepo, "admin", "admin123", user.RoleAdmin, nil)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownUsername(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	// Same error as a wrong password so responses never reveal which
	// usernames exist.
	_, err := svc.Login(context.Background(), auth.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginMissingCompanyStillSucceeds(t *testing.T) {
	svc, userRepo, _, _ := newTestService(t)
	companyID := "deleted-company"
	seedUser(t, userRepo, "admin", "admin123", user.RoleAdmin, &companyID)

	// A dangling company reference degrades to a nil company name rather
	// than failing the login.
	resp, err := svc.Login(context.Background(), auth.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Nil(t, resp.User.CompanyName)
	require.NotNil(t, resp.User.CompanyID)
	assert.Equal(t, companyID, *resp.User.CompanyID)
}
