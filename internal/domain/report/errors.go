package report

import "errors"

var (
	ErrNotRefreshed     = errors.New("report data not loaded, refresh first")
	ErrRevenueMissing   = errors.New("revenue missing for classified date")
	ErrEmployeeNotFound = errors.New("employee not found in directory")
)
