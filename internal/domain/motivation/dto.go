package motivation

import (
	"github.com/restopay/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ThresholdInput struct {
	RevenueThreshold decimal.Decimal `json:"revenue_threshold"`
	Reward           decimal.Decimal `json:"reward"`
}

type CreateProgramRequest struct {
	Name           string           `json:"name"`
	DepartmentCode string           `json:"department_code"`
	Thresholds     []ThresholdInput `json:"thresholds"`
}

func (r *CreateProgramRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidDepartmentCode(r.DepartmentCode) {
		errs = append(errs, validator.ValidationError{Field: "department_code", Message: "must be 1-16 characters of letters, digits, '-' or '_'"})
	}
	errs = append(errs, validateThresholds(r.Thresholds)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProgramRequest struct {
	ID         string
	Name       *string          `json:"name,omitempty"`
	Thresholds []ThresholdInput `json:"thresholds,omitempty"`
}

func (r *UpdateProgramRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "must be a valid UUID"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.Thresholds != nil {
		errs = append(errs, validateThresholds(r.Thresholds)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignProgramRequest struct {
	EmployeeID string  `json:"employee_id"`
	ProgramID  *string `json:"program_id"` // null detaches the employee
}

func (r *AssignProgramRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be a valid UUID"})
	}
	if r.ProgramID != nil && !validator.IsValidUUID(*r.ProgramID) {
		errs = append(errs, validator.ValidationError{Field: "program_id", Message: "must be a valid UUID"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateThresholds(thresholds []ThresholdInput) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for i, t := range thresholds {
		if t.RevenueThreshold.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "thresholds", Message: "revenue_threshold must be non-negative"})
		}
		if t.Reward.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "thresholds", Message: "reward must be non-negative"})
		}
		for _, prev := range thresholds[:i] {
			if prev.RevenueThreshold.Equal(t.RevenueThreshold) {
				errs = append(errs, validator.ValidationError{Field: "thresholds", Message: "revenue_threshold values must be unique"})
			}
		}
	}
	return errs
}

type ThresholdResponse struct {
	ID               string          `json:"id"`
	RevenueThreshold decimal.Decimal `json:"revenue_threshold"`
	Reward           decimal.Decimal `json:"reward"`
}

type ProgramResponse struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	DepartmentCode string              `json:"department_code"`
	Thresholds     []ThresholdResponse `json:"thresholds"`
}

func ToProgramResponse(p Program, thresholds []Threshold) ProgramResponse {
	resp := ProgramResponse{
		ID:             p.ID,
		Name:           p.Name,
		DepartmentCode: p.DepartmentCode,
		Thresholds:     make([]ThresholdResponse, 0, len(thresholds)),
	}
	for _, t := range thresholds {
		resp.Thresholds = append(resp.Thresholds, ThresholdResponse{
			ID:               t.ID,
			RevenueThreshold: t.RevenueThreshold,
			Reward:           t.Reward,
		})
	}
	return resp
}
