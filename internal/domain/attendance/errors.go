package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidEmployeeID = errors.New("employee id is not a valid UUID")

	// ErrEmployeeNotTracked is returned when a ledger query names an employee
	// with no stored attendances. Callers must only query employees the
	// ledger reported via Employees().
	ErrEmployeeNotTracked = errors.New("employee has no attendances in the ledger")
)
