package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/restopay/payroll-backend-go/internal/domain/motivation"
	"github.com/restopay/payroll-backend-go/internal/pkg/database"
)

type motivationRepository struct {
	db *database.DB
}

func NewMotivationRepository(db *database.DB) motivation.ProgramRepository {
	return &motivationRepository{db: db}
}

func (r *motivationRepository) CreateProgram(ctx context.Context, program motivation.Program, thresholds []motivation.Threshold) (motivation.Program, error) {
	var created motivation.Program

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO motivation_programs (name, department_code)
			VALUES ($1, $2)
			RETURNING id, name, department_code, created_at, updated_at
		`
		err := tx.QueryRow(ctx, query, program.Name, program.DepartmentCode).Scan(
			&created.ID, &created.Name, &created.DepartmentCode, &created.CreatedAt, &created.UpdatedAt,
		)
		if err != nil {
			if strings.Contains(err.Error(), "uk_motivation_program_name") {
				return motivation.ErrProgramNameExists
			}
			return fmt.Errorf("failed to create motivation program: %w", err)
		}

		return insertThresholds(ctx, tx, created.ID, thresholds)
	})
	if err != nil {
		return motivation.Program{}, err
	}

	return created, nil
}

func (r *motivationRepository) GetProgramByID(ctx context.Context, id string) (motivation.Program, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, department_code, created_at, updated_at
		FROM motivation_programs
		WHERE id = $1
	`

	var p motivation.Program
	err := q.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.DepartmentCode, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return motivation.Program{}, motivation.ErrProgramNotFound
		}
		return motivation.Program{}, fmt.Errorf("failed to get motivation program: %w", err)
	}

	return p, nil
}

func (r *motivationRepository) GetProgramsByDepartment(ctx context.Context, departmentCode string) ([]motivation.Program, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, department_code, created_at, updated_at
		FROM motivation_programs
		WHERE department_code = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, departmentCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list motivation programs: %w", err)
	}
	defer rows.Close()

	var programs []motivation.Program
	for rows.Next() {
		var p motivation.Program
		if err := rows.Scan(&p.ID, &p.Name, &p.DepartmentCode, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan motivation program: %w", err)
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

func (r *motivationRepository) UpdateProgram(ctx context.Context, req motivation.UpdateProgramRequest) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if req.Name != nil {
			tag, err := tx.Exec(ctx,
				`UPDATE motivation_programs SET name = $1, updated_at = NOW() WHERE id = $2`,
				*req.Name, req.ID,
			)
			if err != nil {
				if strings.Contains(err.Error(), "uk_motivation_program_name") {
					return motivation.ErrProgramNameExists
				}
				return fmt.Errorf("failed to update motivation program: %w", err)
			}
			if tag.RowsAffected() == 0 {
				return motivation.ErrProgramNotFound
			}
		} else {
			var exists bool
			err := tx.QueryRow(ctx,
				`SELECT EXISTS(SELECT 1 FROM motivation_programs WHERE id = $1)`, req.ID,
			).Scan(&exists)
			if err != nil {
				return fmt.Errorf("failed to check motivation program: %w", err)
			}
			if !exists {
				return motivation.ErrProgramNotFound
			}
		}

		if req.Thresholds == nil {
			return nil
		}

		// Tier tables are replaced whole; partial threshold edits are not
		// supported.
		if _, err := tx.Exec(ctx,
			`DELETE FROM motivation_thresholds WHERE program_id = $1`, req.ID,
		); err != nil {
			return fmt.Errorf("failed to clear thresholds: %w", err)
		}

		thresholds := make([]motivation.Threshold, 0, len(req.Thresholds))
		for _, t := range req.Thresholds {
			thresholds = append(thresholds, motivation.Threshold{
				RevenueThreshold: t.RevenueThreshold,
				Reward:           t.Reward,
			})
		}
		return insertThresholds(ctx, tx, req.ID, thresholds)
	})
}

func (r *motivationRepository) DeleteProgram(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		// Detach assigned employees first; thresholds go with the program via
		// ON DELETE CASCADE.
		if _, err := tx.Exec(ctx,
			`UPDATE employee_programs SET program_id = NULL WHERE program_id = $1`, id,
		); err != nil {
			return fmt.Errorf("failed to detach employees: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM motivation_programs WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete motivation program: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return motivation.ErrProgramNotFound
		}
		return nil
	})
}

func (r *motivationRepository) GetThresholds(ctx context.Context, programID string) ([]motivation.Threshold, error) {
	q := GetQuerier(ctx, r.db)
	return queryThresholds(ctx, q, programID)
}

func (r *motivationRepository) GetAssignment(ctx context.Context, employeeID string) (motivation.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.name, p.department_code, p.created_at, p.updated_at
		FROM employee_programs ep
		JOIN motivation_programs p ON p.id = ep.program_id
		WHERE ep.employee_id = $1
	`

	var p motivation.Program
	err := q.QueryRow(ctx, query, employeeID).Scan(&p.ID, &p.Name, &p.DepartmentCode, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return motivation.Assignment{Found: false}, nil
		}
		return motivation.Assignment{}, fmt.Errorf("failed to get program assignment: %w", err)
	}

	thresholds, err := queryThresholds(ctx, q, p.ID)
	if err != nil {
		return motivation.Assignment{}, err
	}

	return motivation.Assignment{Found: true, Program: p, Thresholds: thresholds}, nil
}

func (r *motivationRepository) AssignProgram(ctx context.Context, employeeID string, programID *string) error {
	q := GetQuerier(ctx, r.db)

	if programID == nil {
		_, err := q.Exec(ctx, `DELETE FROM employee_programs WHERE employee_id = $1`, employeeID)
		if err != nil {
			return fmt.Errorf("failed to detach program: %w", err)
		}
		return nil
	}

	query := `
		INSERT INTO employee_programs (employee_id, program_id)
		VALUES ($1, $2)
		ON CONFLICT (employee_id) DO UPDATE SET program_id = EXCLUDED.program_id
	`
	_, err := q.Exec(ctx, query, employeeID, *programID)
	if err != nil {
		if strings.Contains(err.Error(), "fk_employee_program") {
			return motivation.ErrProgramNotFound
		}
		return fmt.Errorf("failed to assign program: %w", err)
	}
	return nil
}

func insertThresholds(ctx context.Context, tx pgx.Tx, programID string, thresholds []motivation.Threshold) error {
	for _, t := range thresholds {
		_, err := tx.Exec(ctx,
			`INSERT INTO motivation_thresholds (program_id, revenue_threshold, reward) VALUES ($1, $2, $3)`,
			programID, t.RevenueThreshold, t.Reward,
		)
		if err != nil {
			return fmt.Errorf("failed to insert threshold: %w", err)
		}
	}
	return nil
}

func queryThresholds(ctx context.Context, q database.Querier, programID string) ([]motivation.Threshold, error) {
	query := `
		SELECT id, program_id, revenue_threshold, reward
		FROM motivation_thresholds
		WHERE program_id = $1
		ORDER BY revenue_threshold ASC
	`

	rows, err := q.Query(ctx, query, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to list thresholds: %w", err)
	}
	defer rows.Close()

	var thresholds []motivation.Threshold
	for rows.Next() {
		var t motivation.Threshold
		if err := rows.Scan(&t.ID, &t.ProgramID, &t.RevenueThreshold, &t.Reward); err != nil {
			return nil, fmt.Errorf("failed to scan threshold: %w", err)
		}
		thresholds = append(thresholds, t)
	}
	return thresholds, rows.Err()
}
