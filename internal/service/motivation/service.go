package motivation

import (
	"context"
	"log/slog"

	"github.com/restopay/payroll-backend-go/internal/domain/motivation"
	"github.com/restopay/payroll-backend-go/internal/pkg/validator"
)

type MotivationServiceImpl struct {
	programs motivation.ProgramRepository
	log      *slog.Logger
}

func NewMotivationService(programs motivation.ProgramRepository, log *slog.Logger) motivation.ProgramService {
	return &MotivationServiceImpl{programs: programs, log: log}
}

func (s *MotivationServiceImpl) CreateProgram(ctx context.Context, req motivation.CreateProgramRequest) (motivation.ProgramResponse, error) {
	if err := req.Validate(); err != nil {
		return motivation.ProgramResponse{}, err
	}

	thresholds := make([]motivation.Threshold, 0, len(req.Thresholds))
	for _, t := range req.Thresholds {
		thresholds = append(thresholds, motivation.Threshold{
			RevenueThreshold: t.RevenueThreshold,
			Reward:           t.Reward,
		})
	}

	program, err := s.programs.CreateProgram(ctx, motivation.Program{
		Name:           req.Name,
		DepartmentCode: req.DepartmentCode,
	}, thresholds)
	if err != nil {
		return motivation.ProgramResponse{}, err
	}

	stored, err := s.programs.GetThresholds(ctx, program.ID)
	if err != nil {
		return motivation.ProgramResponse{}, err
	}

	s.log.Info("motivation program created", "program_id", program.ID, "name", program.Name)
	return motivation.ToProgramResponse(program, stored), nil
}

func (s *MotivationServiceImpl) GetProgram(ctx context.Context, id string) (motivation.ProgramResponse, error) {
	if !validator.IsValidUUID(id) {
		return motivation.ProgramResponse{}, motivation.ErrProgramNotFound
	}

	program, err := s.programs.GetProgramByID(ctx, id)
	if err != nil {
		return motivation.ProgramResponse{}, err
	}
	thresholds, err := s.programs.GetThresholds(ctx, id)
	if err != nil {
		return motivation.ProgramResponse{}, err
	}
	return motivation.ToProgramResponse(program, thresholds), nil
}

func (s *MotivationServiceImpl) ListProgramsByDepartment(ctx context.Context, departmentCode string) ([]motivation.ProgramResponse, error) {
	programs, err := s.programs.GetProgramsByDepartment(ctx, departmentCode)
	if err != nil {
		return nil, err
	}

	responses := make([]motivation.ProgramResponse, 0, len(programs))
	for _, p := range programs {
		thresholds, err := s.programs.GetThresholds(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, motivation.ToProgramResponse(p, thresholds))
	}
	return responses, nil
}

func (s *MotivationServiceImpl) UpdateProgram(ctx context.Context, req motivation.UpdateProgramRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.programs.UpdateProgram(ctx, req)
}

func (s *MotivationServiceImpl) DeleteProgram(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return motivation.ErrProgramNotFound
	}

	if err := s.programs.DeleteProgram(ctx, id); err != nil {
		return err
	}
	s.log.Info("motivation program deleted", "program_id", id)
	return nil
}

func (s *MotivationServiceImpl) AssignProgram(ctx context.Context, req motivation.AssignProgramRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.ProgramID != nil {
		if _, err := s.programs.GetProgramByID(ctx, *req.ProgramID); err != nil {
			return err
		}
	}
	return s.programs.AssignProgram(ctx, req.EmployeeID, req.ProgramID)
}
