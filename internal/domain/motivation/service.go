package motivation

import "context"

type ProgramService interface {
	CreateProgram(ctx context.Context, req CreateProgramRequest) (ProgramResponse, error)
	GetProgram(ctx context.Context, id string) (ProgramResponse, error)
	ListProgramsByDepartment(ctx context.Context, departmentCode string) ([]ProgramResponse, error)
	UpdateProgram(ctx context.Context, req UpdateProgramRequest) error
	DeleteProgram(ctx context.Context, id string) error
	AssignProgram(ctx context.Context, req AssignProgramRequest) error
}
