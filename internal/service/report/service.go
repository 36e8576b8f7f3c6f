package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/restopay/payroll-backend-go/internal/domain/attendance"
	"github.com/restopay/payroll-backend-go/internal/domain/employee"
	"github.com/restopay/payroll-backend-go/internal/domain/motivation"
	"github.com/restopay/payroll-backend-go/internal/domain/report"
	"github.com/restopay/payroll-backend-go/internal/service/reward"
	"github.com/shopspring/decimal"
)

// ReportServiceImpl holds the refreshed ledger and revenue snapshot. The
// engine itself is single-threaded; the mutex serializes Refresh against the
// query methods so HTTP callers cannot observe a half-built ledger.
type ReportServiceImpl struct {
	source    attendance.Source
	directory employee.Directory
	roles     employee.RoleLookup
	programs  motivation.ProgramRepository
	resolver  *reward.Resolver
	rules     attendance.Rules

	// Raw records whose open hour falls outside this window are night-shift
	// noise from the POS and are dropped before normalization.
	ingestFromHour int
	ingestToHour   int

	log *slog.Logger

	mu        sync.Mutex
	ledger    *attendance.Ledger
	revenue   map[time.Time]decimal.Decimal
	refreshed bool
}

func NewReportService(
	source attendance.Source,
	directory employee.Directory,
	roles employee.RoleLookup,
	programs motivation.ProgramRepository,
	resolver *reward.Resolver,
	rules attendance.Rules,
	ingestFromHour int,
	log *slog.Logger,
) report.ReportService {
	return &ReportServiceImpl{
		source:         source,
		directory:      directory,
		roles:          roles,
		programs:       programs,
		resolver:       resolver,
		rules:          rules,
		ingestFromHour: ingestFromHour,
		ingestToHour:   rules.WorkdayCloseHour,
		log:            log,
	}
}

// Refresh rebuilds the ledger from empty for the requested window. No
// partial work happens on a validation failure; a fetch failure leaves the
// previous snapshot in place.
func (s *ReportServiceImpl) Refresh(ctx context.Context, req report.RefreshRequest) (report.RefreshResponse, error) {
	if err := req.Validate(); err != nil {
		return report.RefreshResponse{}, err
	}
	from, to := req.Range()

	records, err := s.source.FetchAttendances(ctx, req.DepartmentCode, from, to)
	if err != nil {
		return report.RefreshResponse{}, fmt.Errorf("fetch attendances: %w", err)
	}

	revenue, err := s.source.FetchRevenue(ctx, req.DepartmentCode, from, to)
	if err != nil {
		return report.RefreshResponse{}, fmt.Errorf("fetch revenue: %w", err)
	}

	classifier := attendance.NewClassifier(s.rules, s.log)
	ledger := attendance.NewLedger(s.rules)

	for _, record := range records {
		if hour := record.OpenAt.Hour(); hour < s.ingestFromHour || hour > s.ingestToHour {
			s.log.Debug("attendance outside ingestion window dropped",
				"employee_id", record.EmployeeID, "open_at", record.OpenAt)
			continue
		}

		id, err := attendance.NewEmployeeID(record.EmployeeID)
		if err != nil {
			s.log.Warn("attendance with malformed employee id dropped",
				"employee_id", record.EmployeeID)
			continue
		}

		ledger.Add(classifier.Normalize(id, record.OpenAt, record.CloseAt))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger = ledger
	s.revenue = revenue
	s.refreshed = true

	s.log.Info("report data refreshed",
		"department_code", req.DepartmentCode,
		"date_from", req.DateFrom,
		"date_to", req.DateTo,
		"attendances", ledger.Count(),
		"employees", len(ledger.Employees()),
		"revenue_days", len(revenue))

	return report.RefreshResponse{
		DateFrom:        req.DateFrom,
		DateTo:          req.DateTo,
		DepartmentCode:  req.DepartmentCode,
		AttendanceCount: ledger.Count(),
		EmployeeCount:   len(ledger.Employees()),
		RevenueDays:     len(revenue),
	}, nil
}

// SummaryRows builds one row per reportable employee in the ledger.
func (s *ReportServiceImpl) SummaryRows(ctx context.Context) ([]report.SummaryRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.refreshed {
		return nil, report.ErrNotRefreshed
	}

	var rows []report.SummaryRow
	for _, id := range s.ledger.Employees() {
		row, include, err := s.buildRow(ctx, id)
		if err != nil {
			return nil, err
		}
		if include {
			rows = append(rows, row)
		}
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (s *ReportServiceImpl) buildRow(ctx context.Context, id attendance.EmployeeID) (report.SummaryRow, bool, error) {
	lookup, err := s.directory.GetByID(ctx, string(id))
	if err != nil {
		return report.SummaryRow{}, false, fmt.Errorf("directory lookup %s: %w", id, err)
	}
	switch lookup.Status {
	case employee.LookupNotFound:
		// A missing directory entry makes the row meaningless; abort the
		// whole build rather than render a nameless line.
		return report.SummaryRow{}, false, fmt.Errorf("%w: %s", report.ErrEmployeeNotFound, id)
	case employee.LookupUnavailable:
		return report.SummaryRow{}, false, fmt.Errorf("directory lookup %s: %w", id, employee.ErrDirectoryUnavailable)
	}

	record := lookup.Employee
	if !record.Employable() {
		s.log.Info("employee without department or role skipped", "employee_id", id)
		return report.SummaryRow{}, false, nil
	}

	assignment, err := s.programs.GetAssignment(ctx, string(id))
	if err != nil {
		return report.SummaryRow{}, false, fmt.Errorf("program lookup %s: %w", id, err)
	}
	if !assignment.Found {
		s.log.Info("employee without motivation program skipped", "employee_id", id)
		return report.SummaryRow{}, false, nil
	}

	role, err := s.roles.GetRoleByID(ctx, record.MainRoleID)
	if err != nil {
		if errors.Is(err, employee.ErrRoleNotFound) {
			s.log.Info("employee with unknown role skipped", "employee_id", id)
			return report.SummaryRow{}, false, nil
		}
		return report.SummaryRow{}, false, fmt.Errorf("role lookup %s: %w", record.MainRoleID, err)
	}

	summary, err := s.ledger.SummaryFor(id)
	if err != nil {
		return report.SummaryRow{}, false, err
	}

	row := report.SummaryRow{
		EmployeeID:        string(id),
		Name:              record.DisplayName(),
		RoleName:          role.Name,
		Code:              record.Code,
		DepartmentCodes:   record.DepartmentCodes,
		FullShifts:        summary.FullShifts,
		HalfShifts:        summary.HalfShifts,
		TotalHours:        hoursOf(summary.TotalDuration),
		RewardFirstHalf:   decimal.Zero,
		RewardSecondHalf:  decimal.Zero,
		RewardMonth:       decimal.Zero,
		TaxiPaidCount:     summary.TaxiPaidCount,
		TaxiPaidSum:       decimal.NewFromInt(summary.TaxiPaidSum),
		TaxiIndeterminate: summary.TaxiIndeterminate,
		Warnings:          summary.Warnings,
	}

	for date, day := range summary.Shifts {
		amount, err := s.resolver.Reward(ctx, string(id), date, day.Type, day.Duration, reward.ModePerHour, s.revenue)
		if err != nil {
			return report.SummaryRow{}, false, err
		}
		row.RewardMonth = row.RewardMonth.Add(amount)
		if attendance.FirstHalf(date) {
			row.RewardFirstHalf = row.RewardFirstHalf.Add(amount)
		} else {
			row.RewardSecondHalf = row.RewardSecondHalf.Add(amount)
		}
	}

	return row, true, nil
}

// DetailRows builds the per-date view of one employee.
func (s *ReportServiceImpl) DetailRows(ctx context.Context, employeeID string) ([]report.DetailRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.refreshed {
		return nil, report.ErrNotRefreshed
	}

	id, err := attendance.NewEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}

	dates, err := s.ledger.RowsFor(id)
	if err != nil {
		return nil, err
	}
	summary, err := s.ledger.SummaryFor(id)
	if err != nil {
		return nil, err
	}

	rows := make([]report.DetailRow, 0, len(summary.Shifts))
	for date, day := range summary.Shifts {
		amount, err := s.resolver.Reward(ctx, employeeID, date, day.Type, day.Duration, reward.ModePerHour, s.revenue)
		if err != nil {
			return nil, err
		}

		periods := make([]string, 0, len(dates[date]))
		for _, a := range dates[date] {
			periods = append(periods, a.Period)
		}

		rows = append(rows, report.DetailRow{
			Date:      date,
			ShiftType: day.Type,
			Period:    strings.Join(periods, ", "),
			Hours:     hoursOf(day.Duration),
			Reward:    amount,
			Taxi:      day.Taxi,
			Warning:   len(dates[date]) > 1 || day.Type == attendance.ShiftWarning,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
	return rows, nil
}

func hoursOf(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(int64(d / time.Second)).Div(decimal.NewFromInt(3600))
}
