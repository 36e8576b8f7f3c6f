package attendance

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// EmployeeID is the POS identifier of an employee, a plain UUID string.
type EmployeeID string

func NewEmployeeID(raw string) (EmployeeID, error) {
	if _, err := uuid.Parse(raw); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmployeeID, raw)
	}
	return EmployeeID(raw), nil
}

func (id EmployeeID) String() string { return string(id) }

// ShiftType classifies the total worked duration of one calendar day.
// Presentation labels live in the handler/export layer, not here.
type ShiftType string

const (
	ShiftFull    ShiftType = "full"
	ShiftHalf    ShiftType = "half"
	ShiftWarning ShiftType = "warning"
)

// TaxiMark is the subsidy state of one calendar day. Days with several
// overlapping attendances cannot be attributed to a single qualifying visit,
// so they are reported indeterminate instead of paid.
type TaxiMark string

const (
	TaxiNone          TaxiMark = "none"
	TaxiPaid          TaxiMark = "paid"
	TaxiIndeterminate TaxiMark = "indeterminate"
)

// Rules holds the payroll constants the classifier and ledger apply.
type Rules struct {
	WorkdayOpenHour  int // attendance start before this hour clamps up
	WorkdayCloseHour int // attendance end after this hour clamps down
	FullShift        time.Duration
	HalfShift        time.Duration
	TaxiAfterHour    int           // subsidy requires the shift to end after this hour
	TaxiMinDuration  time.Duration // ...and to last longer than this
	TaxiAmount       int64
	RoundingStep     time.Duration
}

func DefaultRules() Rules {
	return Rules{
		WorkdayOpenHour:  10,
		WorkdayCloseHour: 22,
		FullShift:        10 * time.Hour,
		HalfShift:        5 * time.Hour,
		TaxiAfterHour:    20,
		TaxiMinDuration:  6 * time.Hour,
		TaxiAmount:       150,
		RoundingStep:     30 * time.Minute,
	}
}

// Classify buckets a day's total worked duration.
func (r Rules) Classify(d time.Duration) ShiftType {
	switch {
	case d >= r.FullShift:
		return ShiftFull
	case d >= r.HalfShift:
		return ShiftHalf
	default:
		return ShiftWarning
	}
}

// Attendance is one normalized work interval of one employee on one calendar
// date. Immutable once built; owned by the ledger bucket it is added to.
type Attendance struct {
	EmployeeID   EmployeeID
	DateFrom     time.Time // clamped start instant
	DateTo       time.Time // clamped end instant
	Date         time.Time // calendar date of the raw start, midnight UTC
	Duration     time.Duration
	Period       string // "HH:MM - HH:MM" over the clamped boundaries
	TaxiEligible bool
}

// DateOf reduces an instant to the midnight-UTC calendar date used as a
// ledger and revenue key.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Classifier turns raw clock events into normalized attendances. It is a pure
// function of its inputs and the configured rules; its only side effect is
// anomaly logging.
type Classifier struct {
	rules Rules
	log   *slog.Logger
}

func NewClassifier(rules Rules, log *slog.Logger) *Classifier {
	return &Classifier{rules: rules, log: log}
}

// Normalize builds an Attendance from a raw open/close pair. A zero closeAt
// means the shift has not been closed yet and defaults to openAt.
//
// Boundaries are clamped to the paid working window. A record spanning two
// calendar dates is an input defect: its duration is zeroed and the anomaly
// is logged, the batch keeps going.
func (c *Classifier) Normalize(employeeID EmployeeID, openAt, closeAt time.Time) Attendance {
	if closeAt.IsZero() {
		closeAt = openAt
	}

	dateFrom := openAt
	if beforeHour(openAt, c.rules.WorkdayOpenHour) {
		c.log.Warn("attendance opened before the paid window, clamping",
			"employee_id", employeeID, "open_at", openAt)
		dateFrom = atHour(openAt, c.rules.WorkdayOpenHour)
	}

	dateTo := closeAt
	if afterHour(closeAt, c.rules.WorkdayCloseHour) {
		c.log.Warn("attendance closed after the paid window, clamping",
			"employee_id", employeeID, "close_at", closeAt)
		dateTo = atHour(closeAt, c.rules.WorkdayCloseHour)
	}

	var duration time.Duration
	switch {
	case !sameDate(openAt, closeAt):
		c.log.Error("attendance spans more than one calendar date, zeroing duration",
			"employee_id", employeeID, "open_at", openAt, "close_at", closeAt)
	case !beforeHour(dateFrom, c.rules.WorkdayCloseHour):
		// Opened at or past the close of the paid window: nothing to pay.
	default:
		duration = dateTo.Sub(dateFrom)
		if duration < 0 {
			duration = 0
		}
	}
	duration = roundHalfUp(duration, c.rules.RoundingStep)

	return Attendance{
		EmployeeID:   employeeID,
		DateFrom:     dateFrom,
		DateTo:       dateTo,
		Date:         DateOf(openAt),
		Duration:     duration,
		Period:       fmt.Sprintf("%s - %s", dateFrom.Format("15:04"), dateTo.Format("15:04")),
		TaxiEligible: duration > c.rules.TaxiMinDuration && afterHour(dateTo, c.rules.TaxiAfterHour),
	}
}

// roundHalfUp rounds d to the nearest step, ties rounding up.
func roundHalfUp(d, step time.Duration) time.Duration {
	if step <= 0 {
		return d
	}
	return (d + step/2) / step * step
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

func beforeHour(t time.Time, hour int) bool {
	return t.Before(atHour(t, hour))
}

func afterHour(t time.Time, hour int) bool {
	return t.After(atHour(t, hour))
}
