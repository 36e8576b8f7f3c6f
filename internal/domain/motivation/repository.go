package motivation

import "context"

// ProgramRepository defines data access for programs, thresholds and
// employee assignments.
type ProgramRepository interface {
	CreateProgram(ctx context.Context, program Program, thresholds []Threshold) (Program, error)
	GetProgramByID(ctx context.Context, id string) (Program, error)
	GetProgramsByDepartment(ctx context.Context, departmentCode string) ([]Program, error)
	UpdateProgram(ctx context.Context, req UpdateProgramRequest) error
	DeleteProgram(ctx context.Context, id string) error

	// GetThresholds returns the program's tiers ordered by revenue threshold
	// ascending.
	GetThresholds(ctx context.Context, programID string) ([]Threshold, error)

	// GetAssignment resolves the program assigned to an employee, thresholds
	// included. An employee with no assignment yields Found=false, nil error.
	GetAssignment(ctx context.Context, employeeID string) (Assignment, error)

	// AssignProgram links an employee to a program; a nil programID detaches.
	AssignProgram(ctx context.Context, employeeID string, programID *string) error
}
