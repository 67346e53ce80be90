package page

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/hrms-lite/internal/client"
	"github.com/stretchr/testify/mock"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type mockEmployeeAPI struct {
	mock.Mock
}

func (m *mockEmployeeAPI) List(ctx context.Context) ([]client.Employee, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]client.Employee)
	return list, args.Error(1)
}

func (m *mockEmployeeAPI) Create(ctx context.Context, in client.NewEmployee) (client.CreateEmployeeResponse, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(client.CreateEmployeeResponse), args.Error(1)
}

func (m *mockEmployeeAPI) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// fakeAttendanceAPI answers List through listFn so tests can hold a
// response back; every call is recorded.
type fakeAttendanceAPI struct {
	mu      sync.Mutex
	listFn  func(employeeID string) ([]client.AttendanceRecord, error)
	markFn  func(in client.NewAttendance) (client.MarkAttendanceResponse, error)
	deleted []string
	lists   []string
}

func (f *fakeAttendanceAPI) List(_ context.Context, employeeID string) ([]client.AttendanceRecord, error) {
	f.mu.Lock()
	f.lists = append(f.lists, employeeID)
	fn := f.listFn
	f.mu.Unlock()
	if fn == nil {
		return []client.AttendanceRecord{}, nil
	}
	return fn(employeeID)
}

func (f *fakeAttendanceAPI) Mark(_ context.Context, in client.NewAttendance) (client.MarkAttendanceResponse, error) {
	return f.markFn(in)
}

func (f *fakeAttendanceAPI) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAttendanceAPI) listCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.lists...)
}

type fakeEmployeeLister struct {
	list []client.Employee
	err  error
}

func (f fakeEmployeeLister) List(context.Context) ([]client.Employee, error) {
	return f.list, f.err
}
