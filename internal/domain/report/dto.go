package report

import (
	"time"

	"github.com/restopay/payroll-backend-go/internal/domain/attendance"
	"github.com/restopay/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// RefreshRequest selects the reporting window and department.
type RefreshRequest struct {
	DateFrom       string `json:"date_from"`
	DateTo         string `json:"date_to"`
	DepartmentCode string `json:"department_code"`
}

func (r *RefreshRequest) Validate() error {
	var errs validator.ValidationErrors

	from, fromErr := time.Parse(dateLayout, r.DateFrom)
	if fromErr != nil {
		errs = append(errs, validator.ValidationError{Field: "date_from", Message: "must be a date in YYYY-MM-DD format"})
	}
	to, toErr := time.Parse(dateLayout, r.DateTo)
	if toErr != nil {
		errs = append(errs, validator.ValidationError{Field: "date_to", Message: "must be a date in YYYY-MM-DD format"})
	}
	if fromErr == nil && toErr == nil && from.After(to) {
		errs = append(errs, validator.ValidationError{Field: "date_from", Message: "must not be after date_to"})
	}
	if !validator.IsValidDepartmentCode(r.DepartmentCode) {
		errs = append(errs, validator.ValidationError{Field: "department_code", Message: "must be 1-16 characters of letters, digits, '-' or '_'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the parsed window. Call Validate first.
func (r *RefreshRequest) Range() (time.Time, time.Time) {
	from, _ := time.Parse(dateLayout, r.DateFrom)
	to, _ := time.Parse(dateLayout, r.DateTo)
	return from, to
}

// SummaryRow is one employee's line in the period report. Reward totals come
// from per-hour resolution of every classified date; the semi-monthly split
// follows the date's day-of-month (1-15 / 16-end).
type SummaryRow struct {
	EmployeeID      string          `json:"employee_id"`
	Name            string          `json:"name"`
	RoleName        string          `json:"role_name"`
	Code            string          `json:"code,omitempty"`
	DepartmentCodes []string        `json:"department_codes"`
	FullShifts      int             `json:"full_shifts"`
	HalfShifts      int             `json:"half_shifts"`
	TotalHours      decimal.Decimal `json:"total_hours"`

	RewardFirstHalf  decimal.Decimal `json:"reward_first_half"`
	RewardSecondHalf decimal.Decimal `json:"reward_second_half"`
	RewardMonth      decimal.Decimal `json:"reward_month"`

	TaxiPaidCount     int             `json:"taxi_paid_count"`
	TaxiPaidSum       decimal.Decimal `json:"taxi_paid_sum"`
	TaxiIndeterminate int             `json:"taxi_indeterminate"`

	// Warnings marks the row for highlighting; it never excludes the row
	// from totals.
	Warnings bool `json:"warnings"`
}

// DetailRow is one calendar date of one employee's detail view.
type DetailRow struct {
	Date      time.Time           `json:"date"`
	ShiftType attendance.ShiftType `json:"shift_type"`
	Period    string              `json:"period"`
	Hours     decimal.Decimal     `json:"hours"`
	Reward    decimal.Decimal     `json:"reward"`
	Taxi      attendance.TaxiMark `json:"taxi"`
	Warning   bool                `json:"warning"`
}

// RefreshResponse reports what a refresh ingested.
type RefreshResponse struct {
	DateFrom        string `json:"date_from"`
	DateTo          string `json:"date_to"`
	DepartmentCode  string `json:"department_code"`
	AttendanceCount int    `json:"attendance_count"`
	EmployeeCount   int    `json:"employee_count"`
	RevenueDays     int    `json:"revenue_days"`
}
