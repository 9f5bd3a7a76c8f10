package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prakura/hrms-backend-go/internal/pkg/jwt"
	"github.com/prakura/hrms-backend-go/internal/pkg/metrics"
	"github.com/prakura/hrms-backend-go/internal/pkg/storage"
	"github.com/prakura/hrms-backend-go/internal/repository/accounts"
	"github.com/prakura/hrms-backend-go/internal/repository/snapshot"
	attendanceService "github.com/prakura/hrms-backend-go/internal/service/attendance"
	authService "github.com/prakura/hrms-backend-go/internal/service/auth"
	batchService "github.com/prakura/hrms-backend-go/internal/service/batch"
	dashboardService "github.com/prakura/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/prakura/hrms-backend-go/internal/service/employee"
	"github.com/prakura/hrms-backend-go/internal/service/facade"
	facultyService "github.com/prakura/hrms-backend-go/internal/service/faculty"
	internService "github.com/prakura/hrms-backend-go/internal/service/intern"
	leaveService "github.com/prakura/hrms-backend-go/internal/service/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestRouter(t *testing.T, backend storage.Backend) http.Handler {
	t.Helper()

	db := snapshot.NewDB(backend)
	m := metrics.New()
	rt := facade.Runtime{Metrics: m}

	userRepo, err := accounts.NewUserRepository(accounts.DemoAccounts(), bcrypt.MinCost)
	require.NoError(t, err)
	jwtService := jwt.NewJWTService(handlerTestSecret, time.Hour)

	h := Handlers{
		Auth:       NewAuthHandler(authService.NewAuthService(userRepo, jwtService)),
		Dashboard:  NewDashboardHandler(dashboardService.NewDashboardService(snapshot.NewDashboardRepository(db), rt, time.UTC)),
		Employee:   NewEmployeeHandler(employeeService.NewEmployeeService(snapshot.NewEmployeeRepository(db), rt)),
		Leave:      NewLeaveHandler(leaveService.NewLeaveService(snapshot.NewLeaveRequestRepository(db), rt)),
		Attendance: NewAttendanceHandler(attendanceService.NewAttendanceService(snapshot.NewAttendanceRepository(db), rt, attendanceService.DefaultPolicy())),
		Batch:      NewBatchHandler(batchService.NewBatchService(snapshot.NewBatchRepository(db), rt)),
		Intern:     NewInternHandler(internService.NewInternService(snapshot.NewInternRepository(db), rt)),
		Faculty:    NewFacultyHandler(facultyService.NewFacultyService(snapshot.NewFacultyRepository(db), rt)),
		Admin:      NewAdminHandler(db),
	}
	cfg := RouterConfig{
		AppName:        "prakura-hrms",
		Version:        "test",
		Env:            "test",
		AllowedOrigins: []string{"http://localhost:5173"},
		Metrics:        m.Handler(),
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return NewRouter(cfg, jwtService, h)
}

func do(t *testing.T, h http.Handler, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func login(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()
	rec, env := do(t, h, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var tok struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tok))
	return tok.AccessToken
}

func TestLogin(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStorage())

	token := login(t, h, "admin@prakura.in", "admin123")
	assert.NotEmpty(t, token)

	rec, env := do(t, h, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "admin@prakura.in", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	rec, env = do(t, h, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "bad"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Error.Details, "password")
}

func TestAuthRequired(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStorage())

	rec, _ := do(t, h, http.MethodGet, "/api/v1/dashboard/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/api/v1/dashboard/stats", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := login(t, h, "emp@prakura.in", "emp123")
	rec, env := do(t, h, http.MethodGet, "/api/v1/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestLogout_RevokesToken(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStorage())
	token := login(t, h, "hr@prakura.in", "hr123")

	rec, env := do(t, h, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "hr@prakura.in")
	assert.NotContains(t, string(env.Data), "password")

	rec, _ = do(t, h, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleGates(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStorage())
	emp := login(t, h, "emp@prakura.in", "emp123")
	hr := login(t, h, "hr@prakura.in", "hr123")

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		body   interface{}
		want   int
	}{
		{"employee lists employees", http.MethodGet, "/api/v1/employees", emp, nil, http.StatusForbidden},
		{"hr lists employees", http.MethodGet, "/api/v1/employees", hr, nil, http.StatusOK},
		{"employee lists faculties", http.MethodGet, "/api/v1/faculties", emp, nil, http.StatusForbidden},
		{"hr lists faculties", http.MethodGet, "/api/v1/faculties", hr, nil, http.StatusOK},
		{"employee approves leave", http.MethodPost, "/api/v1/leaves/l1/approve", emp, nil, http.StatusForbidden},
		{"employee approves leave by update", http.MethodPatch, "/api/v1/leaves/l1", emp, map[string]string{"status": "APPROVED"}, http.StatusForbidden},
		{"employee rejects leave by update", http.MethodPut, "/api/v1/leaves/l1", emp, map[string]string{"status": "REJECTED"}, http.StatusForbidden},
		{"employee lists leaves", http.MethodGet, "/api/v1/leaves", emp, nil, http.StatusOK},
		{"employee lists batches", http.MethodGet, "/api/v1/batches", emp, nil, http.StatusOK},
		{"hr resets data", http.MethodPost, "/api/v1/admin/reset", hr, nil, http.StatusForbidden},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec, _ := do(t, h, c.method, c.path, c.token, c.body)
			assert.Equal(t, c.want, rec.Code, rec.Body.String())
		})
	}
}

func TestEmployeeEndpoints(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStorage())
	hr := login(t, h, "hr@prakura.in", "hr123")

	body := map[string]interface{}{
		"firstName":      "Anita",
		"lastName":       "Desai",
		"email":          "anita.d@prakura.in",
		"department":     "Finance",
		"designation":    "Analyst",
		"joiningDate":    "2024-06-01",
		"employmentType": "FULL_TIME",
		"salary":         48000,
	}
	rec, env := do(t, h, http.MethodPost, "/api/v1/employees", hr, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID      string `json:"id"`
		EmpCode string `json:"empCode"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "PRK-1004", created.EmpCode)

	body["empCode"] = "PRK-1004"
	rec, env = do(t, h, http.MethodPost, "/api/v1/employees", hr, body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	rec, env = do(t, h, http.MethodPost, "/api/v1/employees", hr, map[string]string{"email": "x"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Error.Details, "firstName")

	rec, _ = do(t, h, http.MethodPatch, "/api/v1/employees/"+created.ID, hr, map[string]string{"designation": "Sr. Analyst"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodDelete, "/api/v1/employees/"+created.ID, hr, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, h, http.MethodGet, "/api/v1/employees/"+created.ID, hr, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/v1/employees", hr, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeaveEndpoints(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStorage())
	hr := login(t, h, "hr@prakura.in", "hr123")
	emp := login(t, h, "emp@prakura.in", "emp123")

	rec, env := do(t, h, http.MethodPost, "/api/v1/leaves", emp, map[string]string{
		"type": "Sick Leave", "from": "2024-06-10", "to": "2024-06-11", "reason": "Fever",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		ID         string `json:"id"`
		EmployeeID string `json:"employeeId"`
		Days       int    `json:"days"`
		Status     string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "1", created.EmployeeID)
	assert.Equal(t, 2, created.Days)
	assert.Equal(t, "PENDING", created.Status)

	rec, _ = do(t, h, http.MethodPost, "/api/v1/leaves/l1/approve", hr, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, env = do(t, h, http.MethodPost, "/api/v1/leaves/l1/reject", hr, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Leave request already processed", env.Error.Message)

	rec, _ = do(t, h, http.MethodPost, "/api/v1/leaves/missing/approve", hr, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/api/v1/leaves?employeeId=1", emp, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	assert.Len(t, mine, 2)

	rec, env = do(t, h, http.MethodPatch, "/api/v1/leaves/"+created.ID, emp, map[string]string{"to": "2024-06-12"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, 3, created.Days)

	rec, env = do(t, h, http.MethodPatch, "/api/v1/leaves/"+created.ID, emp, map[string]string{"from": "2024-06-20"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Error.Details, "to")

	rec, env = do(t, h, http.MethodPatch, "/api/v1/leaves/"+created.ID, hr, map[string]string{"status": "REJECTED"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "REJECTED", created.Status)
}

func TestAttendanceEndpoints(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStorage())
	emp := login(t, h, "emp@prakura.in", "emp123")

	rec, _ := do(t, h, http.MethodPost, "/api/v1/attendance/punch-out", emp, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/v1/attendance/punch-in", emp, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec, _ = do(t, h, http.MethodPost, "/api/v1/attendance/punch-in", emp, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, env := do(t, h, http.MethodPost, "/api/v1/attendance/punch-out", emp, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "checkOut")
	assert.Contains(t, string(env.Data), "workingHours")
}

func TestTrainingEndpoints(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStorage())
	admin := login(t, h, "admin@prakura.in", "admin123")

	rec, env := do(t, h, http.MethodPost, "/api/v1/batches", admin, map[string]interface{}{
		"name": "Cloud & DevOps", "trainerId": "f9", "startDate": "2024-07-01",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Error.Details, "trainerId")

	rec, env = do(t, h, http.MethodGet, "/api/v1/interns?batchId=b1", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var interns []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &interns))
	assert.Len(t, interns, 2)

	rec, env = do(t, h, http.MethodPost, "/api/v1/faculties/f1/toggle-status", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"status":"INACTIVE"`)
}

func TestAdminReset(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStorage())
	admin := login(t, h, "admin@prakura.in", "admin123")

	rec, _ := do(t, h, http.MethodDelete, "/api/v1/batches/b1", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, h, http.MethodGet, "/api/v1/batches/b1", admin, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/v1/admin/reset", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, h, http.MethodGet, "/api/v1/batches/b1", admin, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := do(t, h, http.MethodGet, "/api/v1/admin/snapshot", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var s map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &s))
	assert.Contains(t, s, "employees")
	assert.Contains(t, s, "faculties")
}

type brokenBackend struct{ storage.Backend }

func (brokenBackend) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func TestStorageFailure(t *testing.T) {
	h := newTestRouter(t, brokenBackend{storage.NewMemoryStorage()})
	admin := login(t, h, "admin@prakura.in", "admin123")

	rec, env := do(t, h, http.MethodGet, "/api/v1/employees", admin, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "STORAGE_UNAVAILABLE", env.Error.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestRouter(t, storage.NewMemoryStorage())

	rec, _ := do(t, h, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	token := login(t, h, "hr@prakura.in", "hr123")
	do(t, h, http.MethodGet, "/api/v1/employees", token, nil)

	rec, _ = do(t, h, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `prakura_service_operations_total{entity="employee",operation="list",outcome="ok"} 1`)
}
