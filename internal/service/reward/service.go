package reward

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/restopay/payroll-backend-go/internal/domain/attendance"
	"github.com/restopay/payroll-backend-go/internal/domain/motivation"
	"github.com/restopay/payroll-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

// Mode selects how a threshold reward maps to a day's payout.
type Mode int

const (
	// ModeFixed pays the full tier amount for a FULL shift and half of it,
	// floored, for a HALF shift.
	ModeFixed Mode = iota
	// ModePerHour pro-rates the tier amount by worked hours against a
	// PerHourCapHours denominator.
	ModePerHour
)

// Resolver computes the incentive reward for one employee-date.
type Resolver struct {
	programs motivation.ProgramRepository
	capHours decimal.Decimal
	log      *slog.Logger
}

func NewResolver(programs motivation.ProgramRepository, capHours int, log *slog.Logger) *Resolver {
	return &Resolver{
		programs: programs,
		capHours: decimal.NewFromInt(int64(capHours)),
		log:      log,
	}
}

// Reward resolves the payout for one classified date.
//
// An employee without an assigned program yields zero with a warning log so
// the rest of the report still renders. A date missing from revenue is a
// hard error: an unknown revenue figure makes the reward indeterminate and
// must not silently default to zero.
func (r *Resolver) Reward(
	ctx context.Context,
	employeeID string,
	date time.Time,
	shiftType attendance.ShiftType,
	duration time.Duration,
	mode Mode,
	revenue map[time.Time]decimal.Decimal,
) (decimal.Decimal, error) {
	assignment, err := r.programs.GetAssignment(ctx, employeeID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reward for %s: %w", employeeID, err)
	}
	if !assignment.Found {
		r.log.Warn("employee has no motivation program, reward is zero",
			"employee_id", employeeID, "date", date.Format("2006-01-02"))
		return decimal.Zero, nil
	}

	dayRevenue, ok := revenue[date]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", report.ErrRevenueMissing, date.Format("2006-01-02"))
	}

	tier, ok := motivation.TierFor(assignment.Thresholds, dayRevenue)
	if !ok {
		return decimal.Zero, nil
	}

	switch mode {
	case ModePerHour:
		return r.perHour(tier.Reward, duration), nil
	default:
		return fixed(tier.Reward, shiftType), nil
	}
}

func fixed(reward decimal.Decimal, shiftType attendance.ShiftType) decimal.Decimal {
	switch shiftType {
	case attendance.ShiftFull:
		return reward
	case attendance.ShiftHalf:
		return reward.Div(decimal.NewFromInt(2)).Floor()
	default:
		return decimal.Zero
	}
}

func (r *Resolver) perHour(reward decimal.Decimal, duration time.Duration) decimal.Decimal {
	if duration <= 0 {
		return decimal.Zero
	}

	capped := duration
	if maxDuration := time.Duration(r.capHours.IntPart()) * time.Hour; capped > maxDuration {
		capped = maxDuration
	}

	hours := decimal.NewFromInt(int64(capped / time.Second)).Div(decimal.NewFromInt(3600))
	return reward.Div(r.capHours).Mul(hours).Floor()
}
