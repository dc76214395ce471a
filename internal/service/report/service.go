package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/employee"
	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/report"
	"github.com/timetracker-pro/timetracker-backend-go/internal/domain/timeentry"
	"github.com/timetracker-pro/timetracker-backend-go/internal/pkg/validator"
	"github.com/timetracker-pro/timetracker-backend-go/internal/policy"
	"github.com/timetracker-pro/timetracker-backend-go/internal/timesheet"
)

type Service interface {
	// EmployeeSummary totals each visible employee's hours for one month.
	// month/year of 0 default to the current month.
	EmployeeSummary(ctx context.Context, caller policy.Caller, month, year int) ([]report.EmployeeSummary, error)
	EmployeeMonths(ctx context.Context, caller policy.Caller, employeeID string) ([]report.MonthSummary, error)
	EmployeeDays(ctx context.Context, caller policy.Caller, employeeID, yearMonth string) ([]report.DayDetail, error)
}

type ReportServiceImpl struct {
	employee.EmployeeRepository
	timeentry.TimeEntryRepository
}

func NewReportService(employeeRepository employee.EmployeeRepository, timeEntryRepository timeentry.TimeEntryRepository) Service {
	return &ReportServiceImpl{
		EmployeeRepository:  employeeRepository,
		TimeEntryRepository: timeEntryRepository,
	}
}

// EmployeeSummary implements Service.
func (s *ReportServiceImpl) EmployeeSummary(ctx context.Context, caller policy.Caller, month, year int) ([]report.EmployeeSummary, error) {
	scope, err := policy.ReportScope(caller)
	if err != nil {
		return nil, err
	}

	if month == 0 || year == 0 {
		now := time.Now()
		year = now.Year()
		month = int(now.Month())
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

	dateFrom, dateTo := timesheet.MonthRange(year, month)
	monthKey := timesheet.MonthKey(dateFrom)

	summaries := make([]report.EmployeeSummary, 0, len(employees))
	for _, emp := range employees {
		entries, err := s.TimeEntryRepository.ListByEmployeeDateRange(ctx, emp.ID, dateFrom, dateTo)
		if err != nil {
			return nil, fmt.Errorf("failed to list entries for employee %s: %w", emp.ID, err)
		}
		summaries = append(summaries, report.EmployeeSummary{
			EmployeeID:   emp.ID,
			EmployeeName: emp.Name,
			TotalHours:   timesheet.SumHours(entries),
			Month:        monthKey,
			Year:         year,
		})
	}
	return summaries, nil
}

// EmployeeMonths implements Service: every month an employee has worked,
// newest first.
func (s *ReportServiceImpl) EmployeeMonths(ctx context.Context, caller policy.Caller, employeeID string) ([]report.MonthSummary, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if err := policy.AuthorizeEmployeeReport(caller, emp.CompanyID); err != nil {
		return nil, err
	}

	entries, err := s.TimeEntryRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for employee %s: %w", employeeID, err)
	}

	return timesheet.MonthlySummaries(emp.ID, emp.Name, entries), nil
}

// EmployeeDays implements Service: the per-entry breakdown of one month.
func (s *ReportServiceImpl) EmployeeDays(ctx context.Context, caller policy.Caller, employeeID, yearMonth string) ([]report.DayDetail, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if err := policy.AuthorizeEmployeeReport(caller, emp.CompanyID); err != nil {
		return nil, err
	}

	if !validator.IsValidYearMonth(yearMonth) {
		return nil, validator.ValidationErrors{{
			Field:   "year_month",
			Message: "invalid year_month format, use YYYY-MM",
		}}
	}
	parts := strings.SplitN(yearMonth, "-", 2)
	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])

	dateFrom, dateTo := timesheet.MonthRange(year, month)
	entries, err := s.TimeEntryRepository.ListByEmployeeDateRange(ctx, employeeID, dateFrom, dateTo)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for employee %s: %w", employeeID, err)
	}

	return timesheet.DayDetails(emp.ID, emp.Name, entries), nil
}
