package pos

import (
	"context"

	"github.com/restopay/payroll-backend-go/internal/domain/employee"
	"github.com/restopay/payroll-backend-go/internal/pkg/pos"
)

// Directory adapts the POS client to the employee.Directory and
// employee.RoleLookup interfaces.
type Directory struct {
	client *pos.Client
}

func NewDirectory(client *pos.Client) *Directory {
	return &Directory{client: client}
}

var (
	_ employee.Directory  = (*Directory)(nil)
	_ employee.RoleLookup = (*Directory)(nil)
)

func (d *Directory) GetByID(ctx context.Context, id string) (employee.Lookup, error) {
	record, err := d.client.EmployeeByID(ctx, id)
	if err != nil {
		if pos.IsNotFound(err) {
			return employee.Lookup{Status: employee.LookupNotFound}, nil
		}
		return employee.Lookup{Status: employee.LookupUnavailable}, err
	}

	return employee.Lookup{
		Status: employee.LookupFound,
		Employee: employee.Employee{
			ID:              record.ID,
			Name:            record.Name,
			FirstName:       record.FirstName,
			LastName:        record.LastName,
			Code:            record.Code,
			MainRoleID:      record.MainRoleID,
			DepartmentCodes: record.DepartmentCodes,
		},
	}, nil
}

func (d *Directory) GetRoleByID(ctx context.Context, id string) (employee.Role, error) {
	record, err := d.client.RoleByID(ctx, id)
	if err != nil {
		if pos.IsNotFound(err) {
			return employee.Role{}, employee.ErrRoleNotFound
		}
		return employee.Role{}, err
	}
	return employee.Role{ID: record.ID, Name: record.Name}, nil
}
