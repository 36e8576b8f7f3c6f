package attendance

import (
	"sort"
	"time"
)

// Ledger indexes normalized attendances by employee and calendar date.
//
// It is rebuilt from empty on every refresh and is read-only afterwards. The
// ledger itself offers no locking; the owning service must not query while a
// rebuild is writing.
type Ledger struct {
	rules   Rules
	buckets map[EmployeeID]map[time.Time][]Attendance
	count   int
}

func NewLedger(rules Rules) *Ledger {
	return &Ledger{
		rules:   rules,
		buckets: make(map[EmployeeID]map[time.Time][]Attendance),
	}
}

// Add appends an attendance to its (employee, date) bucket. A bucket holding
// more than one attendance means the source data carried several clock-in/out
// pairs for that day; the irregularity is kept, never collapsed.
func (l *Ledger) Add(a Attendance) {
	dates, ok := l.buckets[a.EmployeeID]
	if !ok {
		dates = make(map[time.Time][]Attendance)
		l.buckets[a.EmployeeID] = dates
	}
	dates[a.Date] = append(dates[a.Date], a)
	l.count++
}

// Count returns the total number of stored attendances.
func (l *Ledger) Count() int { return l.count }

// Has reports whether the ledger holds any attendance for the employee.
func (l *Ledger) Has(id EmployeeID) bool {
	_, ok := l.buckets[id]
	return ok
}

// Employees returns the tracked employee ids in deterministic order.
func (l *Ledger) Employees() []EmployeeID {
	ids := make([]EmployeeID, 0, len(l.buckets))
	for id := range l.buckets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// RowsFor returns the raw per-date attendance lists of one employee.
func (l *Ledger) RowsFor(id EmployeeID) (map[time.Time][]Attendance, error) {
	dates, ok := l.buckets[id]
	if !ok {
		return nil, ErrEmployeeNotTracked
	}
	return dates, nil
}

// SummaryFor aggregates one employee's attendances into shift counts,
// semi-monthly buckets, duration and subsidy totals.
func (l *Ledger) SummaryFor(id EmployeeID) (Summary, error) {
	dates, ok := l.buckets[id]
	if !ok {
		return Summary{}, ErrEmployeeNotTracked
	}

	summary := Summary{
		EmployeeID: id,
		Shifts:     make(map[time.Time]DayShift, len(dates)),
	}

	for date, list := range dates {
		var duration time.Duration
		var taxiEligible bool
		for _, a := range list {
			duration += a.Duration
			taxiEligible = taxiEligible || a.TaxiEligible
		}

		taxi := TaxiNone
		if len(list) > 1 {
			// Ambiguous day: overlapping partial shifts cannot be attributed
			// to one qualifying visit.
			summary.Warnings = true
			if taxiEligible {
				taxi = TaxiIndeterminate
				summary.TaxiIndeterminate++
			}
		} else if taxiEligible {
			taxi = TaxiPaid
			summary.TaxiPaidCount++
			summary.TaxiPaidSum += l.rules.TaxiAmount
		}

		shiftType := l.rules.Classify(duration)
		switch shiftType {
		case ShiftFull:
			summary.FullShifts++
			if FirstHalf(date) {
				summary.FullShiftsFirstHalf++
			} else {
				summary.FullShiftsSecondHalf++
			}
		case ShiftHalf:
			summary.HalfShifts++
			if FirstHalf(date) {
				summary.HalfShiftsFirstHalf++
			} else {
				summary.HalfShiftsSecondHalf++
			}
		default:
			summary.Warnings = true
		}

		summary.TotalDuration += duration
		summary.Shifts[date] = DayShift{Type: shiftType, Duration: duration, Taxi: taxi}
	}

	return summary, nil
}
