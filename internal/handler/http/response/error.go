package response

import (
	"errors"
	"net/http"

	"github.com/restopay/payroll-backend-go/internal/domain/attendance"
	"github.com/restopay/payroll-backend-go/internal/domain/auth"
	"github.com/restopay/payroll-backend-go/internal/domain/employee"
	"github.com/restopay/payroll-backend-go/internal/domain/motivation"
	"github.com/restopay/payroll-backend-go/internal/domain/report"
	"github.com/restopay/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Report engine errors
	case errors.Is(err, report.ErrNotRefreshed):
		Conflict(w, "Report data not loaded, refresh first")
	case errors.Is(err, report.ErrRevenueMissing):
		Conflict(w, "Revenue figure missing for a classified date")
	case errors.Is(err, report.ErrEmployeeNotFound):
		NotFound(w, "Employee not found in the POS directory")
	case errors.Is(err, employee.ErrDirectoryUnavailable):
		ServiceUnavailable(w, "Employee directory unavailable")
	case errors.Is(err, employee.ErrRoleNotFound):
		NotFound(w, "Role not found in the POS directory")

	// Attendance errors
	case errors.Is(err, attendance.ErrInvalidEmployeeID):
		BadRequest(w, "Employee id must be a valid UUID", nil)
	case errors.Is(err, attendance.ErrEmployeeNotTracked):
		NotFound(w, "No attendances loaded for this employee")

	// Motivation domain errors
	case errors.Is(err, motivation.ErrProgramNotFound):
		NotFound(w, "Motivation program not found")
	case errors.Is(err, motivation.ErrProgramNameExists):
		Conflict(w, "Motivation program name already exists")
	case errors.Is(err, motivation.ErrDepartmentNotFound):
		NotFound(w, "Department not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
