package employee

// Employee is a directory record as served by the POS. Directory data is
// never persisted locally; every report run reads it live.
type Employee struct {
	ID              string
	Name            string
	FirstName       string
	LastName        string
	Code            string
	MainRoleID      string
	DepartmentCodes []string
}

// DisplayName prefers the "last first" composition the directory carries and
// falls back to the plain name field.
func (e Employee) DisplayName() string {
	if e.LastName != "" && e.FirstName != "" {
		return e.LastName + " " + e.FirstName
	}
	return e.Name
}

// Employable reports whether the record carries everything a report row
// needs. Records without a department or an operational role are skipped by
// the aggregator, not reported as zero rows.
func (e Employee) Employable() bool {
	return len(e.DepartmentCodes) > 0 && e.MainRoleID != ""
}

// Role is an operational role record from the directory.
type Role struct {
	ID   string
	Name string
}

// LookupStatus tags a directory lookup result so callers handle the absent
// and unreachable cases explicitly.
type LookupStatus int

const (
	LookupFound LookupStatus = iota
	LookupNotFound
	LookupUnavailable
)

// Lookup is one directory resolution.
type Lookup struct {
	Status   LookupStatus
	Employee Employee
}
