package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	full := Employee{Name: "ivanov", FirstName: "Ivan", LastName: "Ivanov"}
	assert.Equal(t, "Ivanov Ivan", full.DisplayName())

	plain := Employee{Name: "ivanov"}
	assert.Equal(t, "ivanov", plain.DisplayName())
}

func TestEmployable(t *testing.T) {
	ok := Employee{DepartmentCodes: []string{"HALL"}, MainRoleID: "r1"}
	assert.True(t, ok.Employable())

	assert.False(t, Employee{MainRoleID: "r1"}.Employable())
	assert.False(t, Employee{DepartmentCodes: []string{"HALL"}}.Employable())
}
