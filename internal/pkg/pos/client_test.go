package pos

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/restopay/payroll-backend-go/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken = "0f7c1a44-token"
	// sha1("secret")
	testPassHash = "e5e9fa1ba31ecd1ae84f75caaa474f3a663f05f4"
)

func testServer(t *testing.T, routes map[string]string) (*httptest.Server, *Client) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(loginEndpoint, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "operator", r.URL.Query().Get("login"))
		assert.Equal(t, testPassHash, r.URL.Query().Get("pass"))
		io.WriteString(w, testToken+"\n")
	})
	mux.HandleFunc(logoutEndpoint, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testToken, r.URL.Query().Get("key"))
	})
	for path, body := range routes {
		payload := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, testToken, r.URL.Query().Get("key"))
			io.WriteString(w, payload)
		})
	}

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewClient(config.POSConfig{
		BaseURL:        server.URL,
		Login:          "operator",
		Password:       "secret",
		TimeoutSeconds: 5,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return server, client
}

func TestAttendancesByDepartment(t *testing.T) {
	body := `<?xml version="1.0"?>
<attendances>
  <attendance>
    <employeeId>bb1b2cf2-cf9d-4f34-b54c-11e1b7591b29</employeeId>
    <dateFrom>2024-03-12T09:40:21.000</dateFrom>
    <dateTo>2024-03-12T22:15:03.000</dateTo>
  </attendance>
  <attendance>
    <employeeId>0a6ddfbc-2f3e-4f34-9a1c-54fa9d8f0001</employeeId>
    <dateFrom>2024-03-12T11:00:00.000</dateFrom>
  </attendance>
</attendances>`
	_, client := testServer(t, map[string]string{
		"/resto/api/employees/attendance/byDepartment/HALL": body,
	})

	records, err := client.AttendancesByDepartment(context.Background(),
		"HALL",
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "bb1b2cf2-cf9d-4f34-b54c-11e1b7591b29", records[0].EmployeeID)
	assert.Equal(t, time.Date(2024, time.March, 12, 9, 40, 21, 0, time.UTC), records[0].OpenedAt)
	assert.Equal(t, time.Date(2024, time.March, 12, 22, 15, 3, 0, time.UTC), records[0].ClosedAt)

	assert.True(t, records[1].ClosedAt.IsZero())
}

func TestEmployeeByID(t *testing.T) {
	body := `<?xml version="1.0"?>
<employee>
  <id>bb1b2cf2-cf9d-4f34-b54c-11e1b7591b29</id>
  <name>ivanov</name>
  <firstName>Ivan</firstName>
  <lastName>Ivanov</lastName>
  <code>142</code>
  <mainRoleId>d1b7f3aa-role</mainRoleId>
  <departmentCodes>HALL</departmentCodes>
  <departmentCodes>BAR</departmentCodes>
</employee>`
	_, client := testServer(t, map[string]string{
		"/resto/api/employees/byId/bb1b2cf2-cf9d-4f34-b54c-11e1b7591b29": body,
	})

	record, err := client.EmployeeByID(context.Background(), "bb1b2cf2-cf9d-4f34-b54c-11e1b7591b29")
	require.NoError(t, err)

	assert.Equal(t, "Ivanov", record.LastName)
	assert.Equal(t, "d1b7f3aa-role", record.MainRoleID)
	assert.Equal(t, []string{"HALL", "BAR"}, record.DepartmentCodes)
}

func TestRoleByID(t *testing.T) {
	_, client := testServer(t, map[string]string{
		"/resto/api/employees/roles/byId/d1b7f3aa-role": `<role><id>d1b7f3aa-role</id><name>Waiter</name></role>`,
	})

	role, err := client.RoleByID(context.Background(), "d1b7f3aa-role")
	require.NoError(t, err)
	assert.Equal(t, "Waiter", role.Name)
}

func TestSalesByDay(t *testing.T) {
	body := `<?xml version="1.0"?>
<dayDishValues>
  <dayDishValue><date>12.03.2024</date><value>184500.50</value></dayDishValue>
  <dayDishValue><date>13.03.2024</date><value>92000</value></dayDishValue>
</dayDishValues>`
	_, client := testServer(t, map[string]string{
		"/resto/api/reports/sales": body,
	})

	revenue, err := client.SalesByDay(context.Background(),
		"dep-1",
		time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, revenue, 2)

	day12 := time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC)
	assert.True(t, revenue[day12].Equal(decimal.RequireFromString("184500.50")))
}

func TestNotFoundReply(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(loginEndpoint, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, testToken)
	})
	mux.HandleFunc(logoutEndpoint, func(w http.ResponseWriter, r *http.Request) {})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "employee not found", http.StatusNotFound)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewClient(config.POSConfig{
		BaseURL: server.URL, Login: "operator", Password: "secret", TimeoutSeconds: 5,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.EmployeeByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestAuthFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(loginEndpoint, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewClient(config.POSConfig{
		BaseURL: server.URL, Login: "operator", Password: "wrong", TimeoutSeconds: 5,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := client.RoleByID(context.Background(), "any")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pos auth")
}
