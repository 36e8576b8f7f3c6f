package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/restopay/payroll-backend-go/internal/domain/report"
	"github.com/restopay/payroll-backend-go/internal/export/excel"
	"github.com/restopay/payroll-backend-go/internal/export/pdf"
	"github.com/restopay/payroll-backend-go/internal/handler/http/response"
	"github.com/shopspring/decimal"
)

type ReportHandler interface {
	Refresh(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Detail(w http.ResponseWriter, r *http.Request)
	ExportSummary(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService  report.ReportService
	excelGenerator *excel.Generator
	pdfGenerator   *pdf.Generator
}

func NewReportHandler(reportService report.ReportService, excelGenerator *excel.Generator, pdfGenerator *pdf.Generator) ReportHandler {
	return &ReportHandlerImpl{
		reportService:  reportService,
		excelGenerator: excelGenerator,
		pdfGenerator:   pdfGenerator,
	}
}

func (h *ReportHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	var req report.RefreshRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.reportService.Refresh(r.Context(), req)
	if err != nil {
		slog.Error("Refresh service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Report data refreshed", resp)
}

func (h *ReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.SummaryRows(r.Context())
	if err != nil {
		slog.Error("Summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

func (h *ReportHandlerImpl) Detail(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	rows, err := h.reportService.DetailRows(r.Context(), employeeID)
	if err != nil {
		slog.Error("Detail service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

func (h *ReportHandlerImpl) ExportSummary(w http.ResponseWriter, r *http.Request) {
	rows, err := h.reportService.SummaryRows(r.Context())
	if err != nil {
		slog.Error("ExportSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	title := r.URL.Query().Get("title")
	if title == "" {
		title = "Salary summary"
	}

	data, err := h.excelGenerator.Generate(title, rows)
	if err != nil {
		slog.Error("ExportSummary generate error", "error", err)
		response.InternalServerError(w, "Failed to generate workbook")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="salary_summary.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// payslipRequest carries the operator's manual adjustments for one employee.
type payslipRequest struct {
	Year       int                        `json:"year"`
	Month      int                        `json:"month"`
	Deductions map[string]decimal.Decimal `json:"deductions,omitempty"`
	Bonus      decimal.Decimal            `json:"bonus"`
	OnCard     decimal.Decimal            `json:"on_card"`
}

func (h *ReportHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var req payslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if req.Month < 1 || req.Month > 12 || req.Year < 2000 {
		response.BadRequest(w, "year and month must identify a calendar month", nil)
		return
	}

	rows, err := h.reportService.DetailRows(r.Context(), employeeID)
	if err != nil {
		slog.Error("Payslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	summaryRows, err := h.reportService.SummaryRows(r.Context())
	if err != nil {
		slog.Error("Payslip summary error", "error", err)
		response.HandleError(w, err)
		return
	}
	name := employeeID
	for _, row := range summaryRows {
		if row.EmployeeID == employeeID {
			name = row.Name
			break
		}
	}

	month := time.Month(req.Month)
	monthRows := make([]report.DetailRow, 0, len(rows))
	for _, row := range rows {
		if row.Date.Year() == req.Year && row.Date.Month() == month {
			monthRows = append(monthRows, row)
		}
	}

	data, err := h.pdfGenerator.Generate(pdf.Payslip{
		EmployeeName: name,
		Year:         req.Year,
		Month:        month,
		Rows:         monthRows,
		Adjustments: pdf.Adjustments{
			Deductions: req.Deductions,
			Bonus:      req.Bonus,
			OnCard:     req.OnCard,
		},
	})
	if err != nil {
		slog.Error("Payslip generate error", "error", err)
		response.InternalServerError(w, "Failed to generate payslip")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip_%04d_%02d.pdf"`, req.Year, req.Month))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
