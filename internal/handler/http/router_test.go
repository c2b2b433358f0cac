package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bilgin-hr/puantaj-backend-go/internal/fixtures"
	"github.com/bilgin-hr/puantaj-backend-go/internal/pkg/jwt"
	"github.com/bilgin-hr/puantaj-backend-go/internal/repository/memory"
	attendanceService "github.com/bilgin-hr/puantaj-backend-go/internal/service/attendance"
	auditService "github.com/bilgin-hr/puantaj-backend-go/internal/service/audit"
	authService "github.com/bilgin-hr/puantaj-backend-go/internal/service/auth"
	dashboardService "github.com/bilgin-hr/puantaj-backend-go/internal/service/dashboard"
	employeeService "github.com/bilgin-hr/puantaj-backend-go/internal/service/employee"
	exportService "github.com/bilgin-hr/puantaj-backend-go/internal/service/export"
	locationService "github.com/bilgin-hr/puantaj-backend-go/internal/service/location"
	userService "github.com/bilgin-hr/puantaj-backend-go/internal/service/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	ledgerRepo := memory.NewLedgerRepository()
	employeeRepo := memory.NewEmployeeRepository()
	locationRepo := memory.NewLocationRepository()
	userRepo := memory.NewUserRepository()
	auditRepo := memory.NewAuditRepository()

	require.NoError(t, fixtures.Seed(context.Background(), locationRepo, employeeRepo, userRepo))

	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
	auditSvc := auditService.NewAuditService(auditRepo)
	authSvc := authService.NewAuthService(userRepo, jwtService, auditRepo)
	attendanceSvc := attendanceService.NewAttendanceService(ledgerRepo, employeeRepo, locationRepo, auditSvc)

	handlers := Handlers{
		Auth:       NewAuthHandler(jwtService, authSvc),
		Attendance: NewAttendanceHandler(attendanceSvc),
		Export:     NewExportHandler(exportService.NewExportService(attendanceSvc, auditSvc)),
		Employee:   NewEmployeeHandler(employeeService.NewEmployeeService(employeeRepo, locationRepo, auditSvc)),
		Location:   NewLocationHandler(locationService.NewLocationService(locationRepo, employeeRepo, auditSvc)),
		User:       NewUserHandler(userService.NewUserService(userRepo, locationRepo, auditSvc)),
		Audit:      NewAuditHandler(auditSvc),
		Dashboard:  NewDashboardHandler(dashboardService.NewDashboardService(ledgerRepo, employeeRepo, locationRepo)),
		Master:     NewMasterHandler(),
	}

	return NewRouter(jwtService, "http://localhost:3000", "test", handlers)
}

func login(t *testing.T, router http.Handler, username, password string) string {
	t.Helper()

	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)
	return resp.Data.AccessToken
}

func TestLoginEndpoint(t *testing.T) {
	router := newTestRouter(t)

	token := login(t, router, "admin", "Admin123!")

	assert.NotEmpty(t, token)
}

func TestLoginEndpointRejectsBadPassword(t *testing.T) {
	router := newTestRouter(t)

	body := []byte(`{"username":"admin","password":"wrong"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGridRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/grid?year=2025&month=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGridWithToken(t *testing.T) {
	// Arrange
	router := newTestRouter(t)
	token := login(t, router, "admin", "Admin123!")

	// Act
	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/grid?year=2025&month=5", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Period    string `json:"period"`
			TotalDays int    `json:"total_days"`
			Employees []struct {
				SicilNo string `json:"sicil_no"`
			} `json:"employees"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-06", resp.Data.Period)
	assert.Equal(t, 30, resp.Data.TotalDays)
	assert.Len(t, resp.Data.Employees, 42)
}

func TestUserScopedGrid(t *testing.T) {
	// Arrange: user1 is pinned to the first seeded location.
	router := newTestRouter(t)
	token := login(t, router, "user1", "User123!")

	// Act
	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance/grid?year=2025&month=5", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Employees []struct {
				LocationName string `json:"location_name"`
			} `json:"employees"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Employees, 3)
	for _, emp := range resp.Data.Employees {
		assert.Equal(t, "İstanbul Merkez", emp.LocationName)
	}
}

func TestAdminOnlyRoutes(t *testing.T) {
	router := newTestRouter(t)
	userToken := login(t, router, "user1", "User123!")
	adminToken := login(t, router, "admin", "Admin123!")

	lockBody := []byte(`{"year":2025,"month":5}`)

	// USER role is rejected.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/locks/toggle", bytes.NewReader(lockBody))
	req.Header.Set("Authorization", "Bearer "+userToken)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Admin goes through.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/attendance/locks/toggle", bytes.NewReader(lockBody))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLockedPeriodConflict(t *testing.T) {
	// Arrange: lock June 2025, then try to write a cell into it.
	router := newTestRouter(t)
	adminToken := login(t, router, "admin", "Admin123!")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance/locks/toggle", bytes.NewReader([]byte(`{"year":2025,"month":5}`)))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// Find a seeded employee through the API.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/employees/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listResp struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	require.NotEmpty(t, listResp.Data)

	// Act
	cellBody, err := json.Marshal(map[string]interface{}{
		"year":        2025,
		"month":       5,
		"employee_id": listResp.Data[0].ID,
		"day":         2,
		"cell":        map[string]interface{}{"code": "X", "fm": 0, "ubgt": 0, "meal": true},
	})
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPut, "/api/v1/attendance/cell", bytes.NewReader(cellBody))
	req.Header.Set("Authorization", "Bearer "+adminToken)
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMikroExportDownload(t *testing.T) {
	router := newTestRouter(t)
	adminToken := login(t, router, "admin", "Admin123!")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exports/mikro-csv?year=2025&month=5", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Mikro_Export_2025-06.csv")
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\uFEFF")))
}
