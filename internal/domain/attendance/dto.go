package attendance

import (
	"time"
)

// DayShift is the classification of one calendar day after merging every
// attendance recorded on it.
type DayShift struct {
	Type     ShiftType
	Duration time.Duration // summed over the day's attendances
	Taxi     TaxiMark
}

// Summary aggregates one employee's ledger data for reporting. All fields are
// derived; a Summary is recomputed on demand and never stored.
type Summary struct {
	EmployeeID EmployeeID

	// Warnings is set when any day holds more than one attendance or
	// classifies below a half shift.
	Warnings bool

	FullShifts           int
	FullShiftsFirstHalf  int // days 1-15
	FullShiftsSecondHalf int // days 16-end
	HalfShifts           int
	HalfShiftsFirstHalf  int
	HalfShiftsSecondHalf int

	TotalDuration time.Duration

	// Shifts maps each worked calendar date to its classification.
	Shifts map[time.Time]DayShift

	// TaxiPaidCount/TaxiPaidSum cover days whose single attendance qualified
	// for the subsidy. Ambiguous multi-attendance days are excluded from the
	// sum and counted in TaxiIndeterminate instead.
	TaxiPaidCount     int
	TaxiPaidSum       int64
	TaxiIndeterminate int
}

// FirstHalf reports whether a date belongs to the 1-15 semi-monthly bucket.
func FirstHalf(date time.Time) bool {
	return date.Day() <= 15
}
