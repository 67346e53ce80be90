package mock

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/stretchr/testify/mock"
)

type AttendanceRepository struct {
	mock.Mock
}

var _ attendance.AttendanceRepository = (*AttendanceRepository)(nil)

func (m *AttendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(attendance.Attendance), args.Error(1)
}

func (m *AttendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(attendance.Attendance), args.Error(1)
}

func (m *AttendanceRepository) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	args := m.Called(ctx, employeeID, date)
	return args.Bool(0), args.Error(1)
}

func (m *AttendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]attendance.Attendance)
	return list, args.Error(1)
}

func (m *AttendanceRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *AttendanceRepository) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(int64), args.Error(1)
}
