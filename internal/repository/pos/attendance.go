package pos

import (
	"context"
	"time"

	"github.com/restopay/payroll-backend-go/internal/domain/attendance"
	"github.com/restopay/payroll-backend-go/internal/domain/motivation"
	"github.com/restopay/payroll-backend-go/internal/pkg/pos"
	"github.com/shopspring/decimal"
)

// AttendanceSource adapts the POS client to the attendance.Source interface.
// The sales endpoint is keyed by POS department id, not code, so revenue
// fetches resolve the code through the department registry first.
type AttendanceSource struct {
	client      *pos.Client
	departments motivation.DepartmentRepository
}

func NewAttendanceSource(client *pos.Client, departments motivation.DepartmentRepository) *AttendanceSource {
	return &AttendanceSource{client: client, departments: departments}
}

var _ attendance.Source = (*AttendanceSource)(nil)

func (s *AttendanceSource) FetchAttendances(ctx context.Context, departmentCode string, from, to time.Time) ([]attendance.RawRecord, error) {
	records, err := s.client.AttendancesByDepartment(ctx, departmentCode, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]attendance.RawRecord, 0, len(records))
	for _, r := range records {
		out = append(out, attendance.RawRecord{
			EmployeeID: r.EmployeeID,
			OpenAt:     r.OpenedAt,
			CloseAt:    r.ClosedAt,
		})
	}
	return out, nil
}

func (s *AttendanceSource) FetchRevenue(ctx context.Context, departmentCode string, from, to time.Time) (map[time.Time]decimal.Decimal, error) {
	department, err := s.departments.GetDepartmentByCode(ctx, departmentCode)
	if err != nil {
		return nil, err
	}
	return s.client.SalesByDay(ctx, department.POSID, from, to)
}
