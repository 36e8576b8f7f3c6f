package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/restopay/payroll-backend-go/internal/domain/motivation"
	"github.com/restopay/payroll-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) motivation.DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) ListDepartments(ctx context.Context) ([]motivation.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, code, name, pos_id
		FROM departments
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []motivation.Department
	for rows.Next() {
		var d motivation.Department
		if err := rows.Scan(&d.ID, &d.Code, &d.Name, &d.POSID); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (r *departmentRepository) GetDepartmentByCode(ctx context.Context, code string) (motivation.Department, error) {
	q := GetQuerier(ctx, r.db)

	var d motivation.Department
	err := q.QueryRow(ctx, `
		SELECT id, code, name, pos_id
		FROM departments
		WHERE code = $1
	`, code).Scan(&d.ID, &d.Code, &d.Name, &d.POSID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return motivation.Department{}, motivation.ErrDepartmentNotFound
		}
		return motivation.Department{}, fmt.Errorf("failed to get department: %w", err)
	}
	return d, nil
}
