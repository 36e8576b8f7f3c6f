package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RawRecord is one clock-in/clock-out pair as delivered by the POS, before
// normalization. CloseAt is zero when the shift has not been closed yet.
type RawRecord struct {
	EmployeeID string
	OpenAt     time.Time
	CloseAt    time.Time
}

// Source yields raw attendance records and daily revenue for a date range.
// Implemented against the POS API; the engine never talks to the wire itself.
type Source interface {
	// FetchAttendances returns every clock pair recorded for the department
	// between from and to, inclusive.
	FetchAttendances(ctx context.Context, departmentCode string, from, to time.Time) ([]RawRecord, error)

	// FetchRevenue returns the revenue figure per calendar date (midnight
	// UTC keys) for the department between from and to, inclusive.
	FetchRevenue(ctx context.Context, departmentCode string, from, to time.Time) (map[time.Time]decimal.Decimal, error)
}
