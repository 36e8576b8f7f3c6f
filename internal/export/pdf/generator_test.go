package pdf

import (
	"testing"
	"time"

	"github.com/restopay/payroll-backend-go/internal/domain/attendance"
	"github.com/restopay/payroll-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	slip := Payslip{
		EmployeeName: "Ivanov Ivan",
		Year:         2024,
		Month:        time.March,
		Rows: []report.DetailRow{
			{
				Date:      time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
				ShiftType: attendance.ShiftFull,
				Period:    "10:00 - 22:00",
				Reward:    decimal.NewFromInt(2400),
				Taxi:      attendance.TaxiPaid,
			},
			{
				Date:      time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC),
				ShiftType: attendance.ShiftHalf,
				Period:    "11:00 - 16:00",
				Reward:    decimal.NewFromInt(1000),
			},
		},
		Adjustments: Adjustments{
			Deductions: map[string]decimal.Decimal{
				"advances": decimal.NewFromInt(500),
			},
			Bonus:  decimal.NewFromInt(300),
			OnCard: decimal.NewFromInt(1000),
		},
	}

	data, err := NewGenerator().Generate(slip)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestShiftLabels(t *testing.T) {
	assert.Equal(t, "Full shift", shiftLabel(attendance.ShiftFull))
	assert.Equal(t, "Half shift", shiftLabel(attendance.ShiftHalf))
	assert.Equal(t, "Warning", shiftLabel(attendance.ShiftWarning))

	assert.Equal(t, "?", taxiLabel(attendance.TaxiIndeterminate))
	assert.Equal(t, "+", taxiLabel(attendance.TaxiPaid))
	assert.Equal(t, "", taxiLabel(attendance.TaxiNone))
}
