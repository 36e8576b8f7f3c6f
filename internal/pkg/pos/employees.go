package pos

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// AttendanceRecord is one raw clock pair from the POS. ClosedAt is zero when
// the shift is still open.
type AttendanceRecord struct {
	EmployeeID string
	OpenedAt   time.Time
	ClosedAt   time.Time
}

// EmployeeRecord is a POS directory entry.
type EmployeeRecord struct {
	ID              string
	Name            string
	FirstName       string
	LastName        string
	Code            string
	MainRoleID      string
	DepartmentCodes []string
}

// RoleRecord is a POS operational role.
type RoleRecord struct {
	ID   string
	Name string
}

type attendancesXML struct {
	Attendances []struct {
		EmployeeID string `xml:"employeeId"`
		DateFrom   string `xml:"dateFrom"`
		DateTo     string `xml:"dateTo"`
	} `xml:"attendance"`
}

type employeeXML struct {
	ID              string   `xml:"id"`
	Name            string   `xml:"name"`
	FirstName       string   `xml:"firstName"`
	LastName        string   `xml:"lastName"`
	Code            string   `xml:"code"`
	MainRoleID      string   `xml:"mainRoleId"`
	DepartmentCodes []string `xml:"departmentCodes"`
}

type roleXML struct {
	ID   string `xml:"id"`
	Name string `xml:"name"`
}

// AttendancesByDepartment fetches every clock pair recorded for the
// department between from and to, inclusive. Pairs without a close timestamp
// come back with a zero ClosedAt.
func (c *Client) AttendancesByDepartment(ctx context.Context, departmentCode string, from, to time.Time) ([]AttendanceRecord, error) {
	params := url.Values{}
	params.Set("from", from.Format("2006-01-02"))
	params.Set("to", to.Format("2006-01-02"))

	var payload attendancesXML
	endpoint := "/resto/api/employees/attendance/byDepartment/" + url.PathEscape(departmentCode)
	if err := c.getXML(ctx, endpoint, params, &payload); err != nil {
		return nil, err
	}

	records := make([]AttendanceRecord, 0, len(payload.Attendances))
	for _, a := range payload.Attendances {
		opened, err := parseTime(a.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("attendance for %s: %w", a.EmployeeID, err)
		}

		var closed time.Time
		if a.DateTo != "" {
			closed, err = parseTime(a.DateTo)
			if err != nil {
				return nil, fmt.Errorf("attendance for %s: %w", a.EmployeeID, err)
			}
		}

		records = append(records, AttendanceRecord{
			EmployeeID: a.EmployeeID,
			OpenedAt:   opened,
			ClosedAt:   closed,
		})
	}
	return records, nil
}

// EmployeeByID fetches one directory record.
func (c *Client) EmployeeByID(ctx context.Context, id string) (EmployeeRecord, error) {
	var payload employeeXML
	endpoint := "/resto/api/employees/byId/" + url.PathEscape(id)
	if err := c.getXML(ctx, endpoint, nil, &payload); err != nil {
		return EmployeeRecord{}, err
	}

	return EmployeeRecord{
		ID:              payload.ID,
		Name:            payload.Name,
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
		Code:            payload.Code,
		MainRoleID:      payload.MainRoleID,
		DepartmentCodes: payload.DepartmentCodes,
	}, nil
}

// RoleByID fetches one operational role.
func (c *Client) RoleByID(ctx context.Context, id string) (RoleRecord, error) {
	var payload roleXML
	endpoint := "/resto/api/employees/roles/byId/" + url.PathEscape(id)
	if err := c.getXML(ctx, endpoint, nil, &payload); err != nil {
		return RoleRecord{}, err
	}
	return RoleRecord{ID: payload.ID, Name: payload.Name}, nil
}
