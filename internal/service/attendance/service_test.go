package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	repomock "github.com/cmlabs-hris/hrms-lite/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testEmployeeUUID   = "5f0c6a52-3c2e-4d7e-9a55-9a1d2f1b7c10"
	testAttendanceUUID = "0b7d9a8e-1f2a-4c3b-8d4e-5f6a7b8c9d0e"
)

func strPtr(s string) *string { return &s }

func newTestService() (*repomock.AttendanceRepository, *repomock.EmployeeRepository, attendance.AttendanceService) {
	attendanceRepo := &repomock.AttendanceRepository{}
	employeeRepo := &repomock.EmployeeRepository{}
	return attendanceRepo, employeeRepo, NewAttendanceService(attendanceRepo, employeeRepo)
}

func testEmployee() employee.Employee {
	return employee.Employee{ID: testEmployeeUUID, EmployeeCode: "EMP001", FullName: "Jane Doe", Department: "Eng"}
}

func TestAttendanceService_MarkAttendance_Success(t *testing.T) {
	ctx := context.Background()
	attendanceRepo, employeeRepo, svc := newTestService()
	day := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	employeeRepo.On("GetByEmployeeCode", ctx, "EMP001").Return(testEmployee(), nil)
	attendanceRepo.On("ExistsByEmployeeAndDate", ctx, testEmployeeUUID, day).Return(false, nil)
	attendanceRepo.On("Create", ctx, mock.MatchedBy(func(a attendance.Attendance) bool {
		return a.EmployeeID == testEmployeeUUID && a.Date.Equal(day) && a.Status == attendance.StatusPresent
	})).Return(attendance.Attendance{
		ID: testAttendanceUUID, EmployeeID: testEmployeeUUID, Date: day, Status: attendance.StatusPresent,
		EmployeeCode: strPtr("EMP001"), EmployeeName: strPtr("Jane Doe"), Department: strPtr("Eng"),
	}, nil)

	// Act
	resp, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "EMP001", Date: "2024-05-01", Status: "Present",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, testAttendanceUUID, resp.ID)
	assert.Equal(t, "2024-05-01", resp.Date)
	require.NotNil(t, resp.EmployeeName)
	assert.Equal(t, "Jane Doe", *resp.EmployeeName)
	attendanceRepo.AssertExpectations(t)
}

func TestAttendanceService_MarkAttendance_Duplicate(t *testing.T) {
	ctx := context.Background()
	attendanceRepo, employeeRepo, svc := newTestService()
	day := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	employeeRepo.On("GetByEmployeeCode", ctx, "EMP001").Return(testEmployee(), nil)
	attendanceRepo.On("ExistsByEmployeeAndDate", ctx, testEmployeeUUID, day).Return(true, nil)

	_, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "EMP001", Date: "2024-05-01", Status: "Absent",
	})

	assert.ErrorIs(t, err, attendance.ErrAlreadyMarked)
	assert.Equal(t,
		"Attendance already marked for Jane Doe on 2024-05-01. Cannot mark attendance twice for the same date.",
		err.Error())
	attendanceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAttendanceService_MarkAttendance_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	_, employeeRepo, svc := newTestService()
	employeeRepo.On("GetByEmployeeCode", ctx, "EMP404").Return(employee.Employee{}, employee.ErrEmployeeNotFound)

	_, err := svc.MarkAttendance(ctx, attendance.MarkAttendanceRequest{
		EmployeeID: "EMP404", Date: "2024-05-01", Status: "Present",
	})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Employee not found. Please select a valid employee.", verrs.ToMap()[validator.FieldEmployeeID])
}

func TestAttendanceService_MarkAttendance_InvalidPayload(t *testing.T) {
	_, _, svc := newTestService()

	_, err := svc.MarkAttendance(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: "EMP001", Date: "01/05/2024", Status: "Late",
	})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := verrs.ToMap()
	assert.Contains(t, fields, validator.FieldDate)
	assert.Equal(t, "Status must be one of: Present, Absent", fields[validator.FieldStatus])
}

func TestAttendanceService_ListAttendance_ResolvesFilter(t *testing.T) {
	ctx := context.Background()
	attendanceRepo, employeeRepo, svc := newTestService()

	employeeRepo.On("GetByID", ctx, testEmployeeUUID).Return(testEmployee(), nil)
	attendanceRepo.On("List", ctx, attendance.AttendanceFilter{
		EmployeeKey: testEmployeeUUID, EmployeeID: testEmployeeUUID,
	}).Return([]attendance.Attendance{
		{ID: testAttendanceUUID, Status: attendance.StatusPresent},
	}, nil)

	records, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{EmployeeKey: testEmployeeUUID})

	require.NoError(t, err)
	assert.Len(t, records, 1)
	attendanceRepo.AssertExpectations(t)
}

func TestAttendanceService_ListAttendance_UnknownFilter(t *testing.T) {
	ctx := context.Background()
	attendanceRepo, employeeRepo, svc := newTestService()
	employeeRepo.On("GetByEmployeeCode", ctx, "EMP404").Return(employee.Employee{}, employee.ErrEmployeeNotFound)

	_, err := svc.ListAttendance(ctx, attendance.AttendanceFilter{EmployeeKey: "EMP404"})

	assert.ErrorIs(t, err, attendance.ErrFilterEmployeeNotFound)
	attendanceRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestAttendanceService_DeleteAttendance(t *testing.T) {
	ctx := context.Background()
	attendanceRepo, _, svc := newTestService()
	attendanceRepo.On("Delete", ctx, testAttendanceUUID).Return(nil)

	require.NoError(t, svc.DeleteAttendance(ctx, testAttendanceUUID))
	assert.ErrorIs(t, svc.DeleteAttendance(ctx, "not-a-uuid"), attendance.ErrInvalidAttendanceKey)
}
