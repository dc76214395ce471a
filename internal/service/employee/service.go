package employee

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/employee"
	"github.com/timetracker-pro/timetracker-backend-go/internal/pkg/pdf"
	"github.com/timetracker-pro/timetracker-backend-go/internal/pkg/qrcode"
	"github.com/timetracker-pro/timetracker-backend-go/internal/policy"
)

// QRBadge is the downloadable badge document plus its attachment filename.
type QRBadge struct {
	Filename string
	Content  []byte
}

type Service interface {
	List(ctx context.Context, caller policy.Caller) ([]employee.EmployeeResponse, error)
	Create(ctx context.Context, caller policy.Caller, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Update(ctx context.Context, caller policy.Caller, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	Delete(ctx context.Context, caller policy.Caller, id string) error
	QRCode(ctx context.Context, caller policy.Caller, id string) (employee.QRCodeResponse, error)
	QRBadgePDF(ctx context.Context, caller policy.Caller, id string) (QRBadge, error)
}

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	qrGenerator   qrcode.Generator
	badgeRenderer pdf.BadgeRenderer
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository, qrGenerator qrcode.Generator, badgeRenderer pdf.BadgeRenderer) Service {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
		qrGenerator:        qrGenerator,
		badgeRenderer:      badgeRenderer,
	}
}

// newQRPayload mints a globally unique employee QR payload.
func newQRPayload() string {
	return "QR-EMP-" + strings.ToUpper(uuid.NewString()[:8])
}

// List implements Service. Every role may list; admin and user are scoped to
// their own company.
func (s *EmployeeServiceImpl) List(ctx context.Context, caller policy.Caller) ([]employee.EmployeeResponse, error) {
	scope, err := policy.EmployeeListScope(caller)
	if err != nil {
		return nil, err
	}

	var employees []employee.Employee
	if scope.All {
		employees, err = s.EmployeeRepository.List(ctx)
	} else {
		employees, err = s.EmployeeRepository.ListByCompany(ctx, scope.CompanyID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, e.ToResponse())
	}
	return responses, nil
}

// Create implements Service. The employee is bound to the company supplied in
// the request; there is no cross-check against the caller's company on this
// path (see DESIGN.md).
func (s *EmployeeServiceImpl) Create(ctx context.Context, caller policy.Caller, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := policy.CanManageEmployees(caller); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		ID:        uuid.NewString(),
		Name:      req.Name,
		QRCode:    newQRPayload(),
		CompanyID: req.CompanyID,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		// Check for duplicate QR code (unique constraint violation)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return employee.EmployeeResponse{}, employee.ErrQRCodeExists
			}
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created.ToResponse(), nil
}

// Update implements Service.
func (s *EmployeeServiceImpl) Update(ctx context.Context, caller policy.Caller, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := policy.CanManageEmployees(caller); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, id); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.EmployeeRepository.Update(ctx, id, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return updated.ToResponse(), nil
}

// Delete implements Service.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, caller policy.Caller, id string) error {
	if err := policy.CanManageEmployees(caller); err != nil {
		return err
	}
	return s.EmployeeRepository.Delete(ctx, id)
}

// QRCode implements Service: renders the employee's QR payload as a base64
// encoded PNG for inline display.
func (s *EmployeeServiceImpl) QRCode(ctx context.Context, caller policy.Caller, id string) (employee.QRCodeResponse, error) {
	if err := policy.CanManageEmployees(caller); err != nil {
		return employee.QRCodeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.QRCodeResponse{}, err
	}

	img, err := s.qrGenerator.Render(emp.QRCode)
	if err != nil {
		return employee.QRCodeResponse{}, fmt.Errorf("failed to render QR code: %w", err)
	}

	return employee.QRCodeResponse{
		QRCodeData:  emp.QRCode,
		QRCodeImage: base64.StdEncoding.EncodeToString(img),
	}, nil
}

// QRBadgePDF implements Service: builds the printable A4 badge.
func (s *EmployeeServiceImpl) QRBadgePDF(ctx context.Context, caller policy.Caller, id string) (QRBadge, error) {
	if err := policy.CanManageEmployees(caller); err != nil {
		return QRBadge{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return QRBadge{}, err
	}

	content, err := s.badgeRenderer.RenderEmployeeBadge(emp.Name, emp.QRCode)
	if err != nil {
		return QRBadge{}, fmt.Errorf("failed to render QR badge: %w", err)
	}

	filename := fmt.Sprintf("qr_code_%s_%s.pdf", strings.ReplaceAll(emp.Name, " ", "_"), emp.QRCode)
	return QRBadge{Filename: filename, Content: content}, nil
}
