package company

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/company"
	"github.com/timetracker-pro/timetracker-backend-go/internal/policy"
)

type Service interface {
	List(ctx context.Context, caller policy.Caller) ([]company.CompanyResponse, error)
	Create(ctx context.Context, caller policy.Caller, req company.CreateCompanyRequest) (company.CompanyResponse, error)
	Update(ctx context.Context, caller policy.Caller, id string, req company.UpdateCompanyRequest) (company.CompanyResponse, error)
	Delete(ctx context.Context, caller policy.Caller, id string) error
}

type CompanyServiceImpl struct {
	company.CompanyRepository
}

func NewCompanyService(companyRepository company.CompanyRepository) Service {
	return &CompanyServiceImpl{CompanyRepository: companyRepository}
}

// List implements Service. Companies are owner-only and never scoped.
func (s *CompanyServiceImpl) List(ctx context.Context, caller policy.Caller) ([]company.CompanyResponse, error) {
	if err := policy.CanManageCompanies(caller); err != nil {
		return nil, err
	}

	companies, err := s.CompanyRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	responses := make([]company.CompanyResponse, 0, len(companies))
	for _, co := range companies {
		responses = append(responses, co.ToResponse())
	}
	return responses, nil
}

// Create implements Service.
func (s *CompanyServiceImpl) Create(ctx context.Context, caller policy.Caller, req company.CreateCompanyRequest) (company.CompanyResponse, error) {
	if err := policy.CanManageCompanies(caller); err != nil {
		return company.CompanyResponse{}, err
	}

	created, err := s.CompanyRepository.Create(ctx, company.Company{
		ID:        uuid.NewString(),
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to create company: %w", err)
	}
	return created.ToResponse(), nil
}

// Update implements Service. Only supplied fields overwrite.
func (s *CompanyServiceImpl) Update(ctx context.Context, caller policy.Caller, id string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := policy.CanManageCompanies(caller); err != nil {
		return company.CompanyResponse{}, err
	}

	if _, err := s.CompanyRepository.GetByID(ctx, id); err != nil {
		return company.CompanyResponse{}, err
	}

	if err := s.CompanyRepository.Update(ctx, id, req); err != nil {
		return company.CompanyResponse{}, err
	}

	// Read back after write; a concurrent delete surfaces as not found.
	updated, err := s.CompanyRepository.GetByID(ctx, id)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return updated.ToResponse(), nil
}

// Delete implements Service. Deletion does not cascade to users or employees
// still referencing the company.
func (s *CompanyServiceImpl) Delete(ctx context.Context, caller policy.Caller, id string) error {
	if err := policy.CanManageCompanies(caller); err != nil {
		return err
	}
	return s.CompanyRepository.Delete(ctx, id)
}
