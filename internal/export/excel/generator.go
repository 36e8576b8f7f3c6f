package excel

import (
	"fmt"
	"strings"

	"github.com/restopay/payroll-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate renders the period summary rows into a workbook. Rows carrying a
// warnings flag are tinted so the reviewer spots them before paying out.
func (g *Generator) Generate(title string, rows []report.SummaryRow) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Summary"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", title)

	headerRow := 3
	headers := []string{
		"Employee", "Role", "Departments", "Code",
		"Full shifts", "Half shifts", "Hours",
		"Reward 1-15", "Reward 16-end", "Reward month",
		"Taxi days", "Taxi sum", "Taxi ?",
	}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return nil, err
		}
		set(cell, header)
	}

	warnStyle, err := file.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#FFE9A8"}},
	})
	if err != nil {
		return nil, err
	}

	for i, row := range rows {
		rowNum := headerRow + 1 + i
		set(fmt.Sprintf("A%d", rowNum), row.Name)
		set(fmt.Sprintf("B%d", rowNum), row.RoleName)
		set(fmt.Sprintf("C%d", rowNum), strings.Join(row.DepartmentCodes, ", "))
		set(fmt.Sprintf("D%d", rowNum), row.Code)
		set(fmt.Sprintf("E%d", rowNum), row.FullShifts)
		set(fmt.Sprintf("F%d", rowNum), row.HalfShifts)
		set(fmt.Sprintf("G%d", rowNum), row.TotalHours.InexactFloat64())
		set(fmt.Sprintf("H%d", rowNum), row.RewardFirstHalf.InexactFloat64())
		set(fmt.Sprintf("I%d", rowNum), row.RewardSecondHalf.InexactFloat64())
		set(fmt.Sprintf("J%d", rowNum), row.RewardMonth.InexactFloat64())
		set(fmt.Sprintf("K%d", rowNum), row.TaxiPaidCount)
		set(fmt.Sprintf("L%d", rowNum), row.TaxiPaidSum.InexactFloat64())
		set(fmt.Sprintf("M%d", rowNum), row.TaxiIndeterminate)

		if row.Warnings {
			_ = file.SetCellStyle(sheet, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("M%d", rowNum), warnStyle)
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 28)
	_ = file.SetColWidth(sheet, "B", "C", 18)
	_ = file.SetColWidth(sheet, "D", "M", 12)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
