package excel

import (
	"bytes"
	"testing"

	"github.com/restopay/payroll-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerate(t *testing.T) {
	rows := []report.SummaryRow{
		{
			Name: "Ivanov Ivan", RoleName: "Waiter", Code: "142",
			DepartmentCodes: []string{"HALL", "BAR"},
			FullShifts:      10, HalfShifts: 4,
			TotalHours:       decimal.NewFromInt(120),
			RewardFirstHalf:  decimal.NewFromInt(12000),
			RewardSecondHalf: decimal.NewFromInt(9500),
			RewardMonth:      decimal.NewFromInt(21500),
			TaxiPaidCount:    3, TaxiPaidSum: decimal.NewFromInt(450),
		},
		{
			Name: "Petrov Petr", RoleName: "Cook",
			TotalHours: decimal.NewFromInt(40), Warnings: true,
			RewardMonth: decimal.NewFromInt(4000),
		},
	}

	data, err := NewGenerator().Generate("March 2024, HALL", rows)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	title, err := file.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "March 2024, HALL", title)

	name, err := file.GetCellValue("Summary", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Ivanov Ivan", name)

	departments, err := file.GetCellValue("Summary", "C4")
	require.NoError(t, err)
	assert.Equal(t, "HALL, BAR", departments)

	monthReward, err := file.GetCellValue("Summary", "J5")
	require.NoError(t, err)
	assert.Equal(t, "4000", monthReward)
}

func TestGenerate_Empty(t *testing.T) {
	data, err := NewGenerator().Generate("March 2024", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
