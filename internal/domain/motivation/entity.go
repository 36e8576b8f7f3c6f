package motivation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Program - a named incentive scheme owned by one department. Employees are
// assigned at most one program; the reward for a date is looked up in the
// program's threshold table against that date's revenue.
type Program struct {
	ID             string
	Name           string
	DepartmentCode string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Threshold - one tier of a program. A day whose revenue reaches
// RevenueThreshold qualifies for Reward; the richest qualifying tier wins.
type Threshold struct {
	ID               string
	ProgramID        string
	RevenueThreshold decimal.Decimal
	Reward           decimal.Decimal
}

// Assignment is the result of a program-for-employee lookup. Found is an
// explicit tag so callers decide the unassigned case deliberately instead of
// checking for zero values.
type Assignment struct {
	Found      bool
	Program    Program
	Thresholds []Threshold // ordered by RevenueThreshold ascending
}

// TierFor returns the richest threshold whose RevenueThreshold does not
// exceed revenue. The second result is false when no tier qualifies.
func TierFor(thresholds []Threshold, revenue decimal.Decimal) (Threshold, bool) {
	var best Threshold
	var found bool
	for _, t := range thresholds {
		if t.RevenueThreshold.GreaterThan(revenue) {
			continue
		}
		if !found || t.RevenueThreshold.GreaterThan(best.RevenueThreshold) {
			best = t
			found = true
		}
	}
	return best, found
}
