package motivation

import "context"

// Department is a locally-registered restaurant department. The code matches
// the POS department code; the POS department id is what the sales report
// endpoint expects.
type Department struct {
	ID    string
	Code  string
	Name  string
	POSID string
}

type DepartmentRepository interface {
	ListDepartments(ctx context.Context) ([]Department, error)
	GetDepartmentByCode(ctx context.Context, code string) (Department, error)
}
