package timeentry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/employee"
	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/timeentry"
	"github.com/timetracker-pro/timetracker-backend-go/internal/policy"
	"github.com/timetracker-pro/timetracker-backend-go/internal/timesheet"
)

type Service interface {
	List(ctx context.Context, caller policy.Caller) ([]timeentry.TimeEntryResponse, error)
	Create(ctx context.Context, caller policy.Caller, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntryResponse, error)
	Update(ctx context.Context, caller policy.Caller, id string, req timeentry.UpdateTimeEntryRequest) (timeentry.TimeEntryResponse, error)
	Delete(ctx context.Context, caller policy.Caller, id string) error
}

type TimeEntryServiceImpl struct {
	timeentry.TimeEntryRepository
	employee.EmployeeRepository
}

func NewTimeEntryService(timeEntryRepository timeentry.TimeEntryRepository, employeeRepository employee.EmployeeRepository) Service {
	return &TimeEntryServiceImpl{
		TimeEntryRepository: timeEntryRepository,
		EmployeeRepository:  employeeRepository,
	}
}

// List implements Service. Scoped callers see only entries whose employee
// belongs to their company: the employee set is resolved first, then entries
// are filtered by membership in that set.
func (s *TimeEntryServiceImpl) List(ctx context.Context, caller policy.Caller) ([]timeentry.TimeEntryResponse, error) {
	scope, err := policy.TimeEntryListScope(caller)
	if err != nil {
		return nil, err
	}

	var entries []timeentry.TimeEntry
	if scope.All {
		entries, err = s.TimeEntryRepository.List(ctx)
	} else {
		var employees []employee.Employee
		employees, err = s.EmployeeRepository.ListByCompany(ctx, scope.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve company employees: %w", err)
		}
		employeeIDs := make([]string, 0, len(employees))
		for _, e := range employees {
			employeeIDs = append(employeeIDs, e.ID)
		}
		entries, err = s.TimeEntryRepository.ListByEmployees(ctx, employeeIDs)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, e.ToResponse())
	}
	return responses, nil
}

// Create implements Service. The date is derived from check_in once, here,
// and never changes afterwards.
func (s *TimeEntryServiceImpl) Create(ctx context.Context, caller policy.Caller, req timeentry.CreateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if err := policy.AuthorizeTimeEntryCreate(caller, emp.CompanyID); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	created, err := s.TimeEntryRepository.Create(ctx, timeentry.TimeEntry{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Date:       timesheet.EntryDate(req.CheckIn),
		TotalHours: timesheet.Hours(req.CheckIn, req.CheckOut),
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to create time entry: %w", err)
	}
	return created.ToResponse(), nil
}

// Update implements Service. Hours are recomputed against the merged pair of
// timestamps whenever either one changes; the stored date stays pinned to the
// original check-in day even when check_in moves to another calendar day.
func (s *TimeEntryServiceImpl) Update(ctx context.Context, caller policy.Caller, id string, req timeentry.UpdateTimeEntryRequest) (timeentry.TimeEntryResponse, error) {
	if err := policy.CanManageTimeEntries(caller); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	existing, err := s.TimeEntryRepository.GetByID(ctx, id)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	fields := timeentry.UpdateTimeEntryFields{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
	}

	checkIn := existing.CheckIn
	if req.CheckIn != nil {
		checkIn = *req.CheckIn
	}
	checkOut := existing.CheckOut
	if req.CheckOut != nil {
		checkOut = req.CheckOut
	}
	if checkOut != nil {
		fields.TotalHours = timesheet.Hours(checkIn, checkOut)
		fields.HoursKnown = true
	}

	if err := s.TimeEntryRepository.Update(ctx, id, fields); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	updated, err := s.TimeEntryRepository.GetByID(ctx, id)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}
	return updated.ToResponse(), nil
}

// Delete implements Service.
func (s *TimeEntryServiceImpl) Delete(ctx context.Context, caller policy.Caller, id string) error {
	if err := policy.CanManageTimeEntries(caller); err != nil {
		return err
	}
	return s.TimeEntryRepository.Delete(ctx, id)
}
