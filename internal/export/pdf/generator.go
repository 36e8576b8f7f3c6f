package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/restopay/payroll-backend-go/internal/domain/attendance"
	"github.com/restopay/payroll-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

// Adjustments are the manual per-employee corrections entered by the
// operator before printing a payslip.
type Adjustments struct {
	Deductions map[string]decimal.Decimal
	Bonus      decimal.Decimal
	OnCard     decimal.Decimal
}

// Payslip is one employee-month to print.
type Payslip struct {
	EmployeeName string
	Year         int
	Month        time.Month
	Rows         []report.DetailRow
	Adjustments  Adjustments
}

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders a day-by-day payslip grid for one month: every calendar
// day gets a line whether worked or not, followed by shift totals, the
// operator's adjustments and the net amount.
func (g *Generator) Generate(slip Payslip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 12, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s - %02d/%d", slip.EmployeeName, slip.Month, slip.Year), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	colWidths := []float64{28, 38, 44, 26, 14}
	g.tableRow(pdf, []string{"Date", "Shift", "Period", "Reward", "Taxi"}, colWidths, true)

	byDate := make(map[time.Time]report.DetailRow, len(slip.Rows))
	for _, row := range slip.Rows {
		byDate[row.Date] = row
	}

	var (
		rewardSum   = decimal.Zero
		fullDays    int
		partialDays int
	)

	daysInMonth := time.Date(slip.Year, slip.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(slip.Year, slip.Month, day, 0, 0, 0, 0, time.UTC)
		row, worked := byDate[date]

		cells := []string{date.Format("02.01.2006"), "", "", "", ""}
		if worked {
			cells[1] = shiftLabel(row.ShiftType)
			cells[2] = row.Period
			cells[3] = row.Reward.StringFixed(0)
			cells[4] = taxiLabel(row.Taxi)

			rewardSum = rewardSum.Add(row.Reward)
			switch row.ShiftType {
			case attendance.ShiftFull:
				fullDays++
			case attendance.ShiftHalf:
				partialDays++
			}
		}
		g.tableRow(pdf, cells, colWidths, false)
	}

	pdf.Ln(3)
	pdf.SetFont(g.fontName, "B", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("Full shifts: %d    Half shifts: %d    Rewards: %s",
		fullDays, partialDays, rewardSum.StringFixed(0)), "", 1, "L", false, 0, "")

	deductionsSum := decimal.Zero
	pdf.SetFont(g.fontName, "", 9)
	for name, amount := range slip.Adjustments.Deductions {
		deductionsSum = deductionsSum.Add(amount)
		pdf.CellFormat(0, 5, fmt.Sprintf("Deduction %s: %s", name, amount.StringFixed(0)), "", 1, "L", false, 0, "")
	}

	total := rewardSum.Sub(deductionsSum).Add(slip.Adjustments.Bonus)
	net := total.Sub(slip.Adjustments.OnCard)

	pdf.Ln(1)
	pdf.CellFormat(0, 5, fmt.Sprintf("Bonus: %s    Deductions: %s    On card: %s",
		slip.Adjustments.Bonus.StringFixed(0), deductionsSum.StringFixed(0),
		slip.Adjustments.OnCard.StringFixed(0)), "", 1, "L", false, 0, "")

	pdf.SetFont(g.fontName, "B", 10)
	pdf.CellFormat(0, 7, fmt.Sprintf("Net to pay: %s", net.StringFixed(0)), "", 1, "L", false, 0, "")

	if workedDays := fullDays + partialDays; workedDays > 0 {
		average := total.Div(decimal.NewFromInt(int64(workedDays))).Round(2)
		pdf.SetFont(g.fontName, "", 9)
		pdf.CellFormat(0, 5, fmt.Sprintf("Average per worked day: %s", average.String()), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) tableRow(pdf *gofpdf.Fpdf, cols []string, widths []float64, header bool) {
	style := ""
	size := 8.0
	if header {
		style = "B"
		size = 9.0
	}
	pdf.SetFont(g.fontName, style, size)
	for i, col := range cols {
		pdf.CellFormat(widths[i], 5.5, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

// Display labels live here; the classification enum carries none.
func shiftLabel(t attendance.ShiftType) string {
	switch t {
	case attendance.ShiftFull:
		return "Full shift"
	case attendance.ShiftHalf:
		return "Half shift"
	default:
		return "Warning"
	}
}

func taxiLabel(mark attendance.TaxiMark) string {
	switch mark {
	case attendance.TaxiPaid:
		return "+"
	case attendance.TaxiIndeterminate:
		return "?"
	default:
		return ""
	}
}
