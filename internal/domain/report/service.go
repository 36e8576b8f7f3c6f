package report

import "context"

// ReportService is the engine facade. Refresh rebuilds the in-memory ledger
// for the requested window; the query methods read the last refreshed state.
type ReportService interface {
	Refresh(ctx context.Context, req RefreshRequest) (RefreshResponse, error)
	SummaryRows(ctx context.Context) ([]SummaryRow, error)
	DetailRows(ctx context.Context, employeeID string) ([]DetailRow, error)
}
