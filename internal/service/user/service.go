package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/company"
	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/user"
	"github.com/timetracker-pro/timetracker-backend-go/internal/policy"
)

type Service interface {
	List(ctx context.Context, caller policy.Caller) ([]user.UserResponse, error)
	Create(ctx context.Context, caller policy.Caller, req user.CreateUserRequest) (user.UserResponse, error)
	Update(ctx context.Context, caller policy.Caller, id string, req user.UpdateUserRequest) (user.UserResponse, error)
	Delete(ctx context.Context, caller policy.Caller, id string) error
}

type UserServiceImpl struct {
	user.UserRepository
	company.CompanyRepository
}

func NewUserService(userRepository user.UserRepository, companyRepository company.CompanyRepository) Service {
	return &UserServiceImpl{
		UserRepository:    userRepository,
		CompanyRepository: companyRepository,
	}
}

func (s *UserServiceImpl) companyName(ctx context.Context, companyID *string) *string {
	if companyID == nil {
		return nil
	}
	co, err := s.CompanyRepository.GetByID(ctx, *companyID)
	if err != nil {
		return nil
	}
	return &co.Name
}

// List implements Service. Owners see every user, admins their own company.
func (s *UserServiceImpl) List(ctx context.Context, caller policy.Caller) ([]user.UserResponse, error) {
	scope, err := policy.UserListScope(caller)
	if err != nil {
		return nil, err
	}

	var users []user.User
	if scope.All {
		users, err = s.UserRepository.List(ctx)
	} else {
		users, err = s.UserRepository.ListByCompany(ctx, scope.CompanyID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, u.ToResponse(s.companyName(ctx, u.CompanyID)))
	}
	return responses, nil
}

// Create implements Service.
func (s *UserServiceImpl) Create(ctx context.Context, caller policy.Caller, req user.CreateUserRequest) (user.UserResponse, error) {
	companyID, err := policy.AuthorizeUserCreate(caller, req.Role, req.CompanyID)
	if err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.UserRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
		CompanyID:    companyID,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created.ToResponse(s.companyName(ctx, created.CompanyID)), nil
}

// Update implements Service. The target is resolved first: a missing user is
// not found, never an authorization failure.
func (s *UserServiceImpl) Update(ctx context.Context, caller policy.Caller, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	target, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	if err := policy.AuthorizeUserUpdate(caller, target, req); err != nil {
		return user.UserResponse{}, err
	}

	fields := user.UpdateUserFields{
		Username:  req.Username,
		Role:      req.Role,
		CompanyID: req.CompanyID,
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		fields.PasswordHash = &hashed
	}

	if err := s.UserRepository.Update(ctx, id, fields); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return updated.ToResponse(s.companyName(ctx, updated.CompanyID)), nil
}

// Delete implements Service.
func (s *UserServiceImpl) Delete(ctx context.Context, caller policy.Caller, id string) error {
	target, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := policy.AuthorizeUserDelete(caller, target); err != nil {
		return err
	}

	return s.UserRepository.Delete(ctx, id)
}
