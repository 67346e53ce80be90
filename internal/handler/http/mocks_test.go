package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/stretchr/testify/mock"
)

type mockEmployeeService struct {
	mock.Mock
}

func (m *mockEmployeeService) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]employee.EmployeeResponse)
	return list, args.Error(1)
}

func (m *mockEmployeeService) GetEmployee(ctx context.Context, key string) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *mockEmployeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *mockEmployeeService) DeleteEmployee(ctx context.Context, key string) (employee.DeleteEmployeeResponse, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(employee.DeleteEmployeeResponse), args.Error(1)
}

type mockAttendanceService struct {
	mock.Mock
}

func (m *mockAttendanceService) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]attendance.AttendanceResponse)
	return list, args.Error(1)
}

func (m *mockAttendanceService) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(attendance.AttendanceResponse), args.Error(1)
}

func (m *mockAttendanceService) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(attendance.AttendanceResponse), args.Error(1)
}

func (m *mockAttendanceService) DeleteAttendance(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newTestRouter(t *testing.T) (*mockEmployeeService, *mockAttendanceService, http.Handler) {
	t.Helper()
	employees := &mockEmployeeService{}
	records := &mockAttendanceService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(logger, "http://localhost:3000", NewEmployeeHandler(employees), NewAttendanceHandler(records))
	t.Cleanup(func() {
		employees.AssertExpectations(t)
		records.AssertExpectations(t)
	})
	return employees, records, router
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
