package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	repomock "github.com/cmlabs-hris/hrms-lite/internal/repository/mock"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testEmployeeUUID = "5f0c6a52-3c2e-4d7e-9a55-9a1d2f1b7c10"

func newTestService() (*repomock.EmployeeRepository, *repomock.AttendanceRepository, *repomock.TxManager, employee.EmployeeService) {
	employeeRepo := &repomock.EmployeeRepository{}
	attendanceRepo := &repomock.AttendanceRepository{}
	tx := &repomock.TxManager{}
	return employeeRepo, attendanceRepo, tx, NewEmployeeService(tx, employeeRepo, attendanceRepo)
}

func TestEmployeeService_CreateEmployee_Success(t *testing.T) {
	ctx := context.Background()
	employeeRepo, _, _, svc := newTestService()

	employeeRepo.On("ExistsByEmployeeCode", ctx, "EMP001").Return(false, nil)
	employeeRepo.On("Create", ctx, mock.MatchedBy(func(e employee.Employee) bool {
		return e.ID != "" && e.EmployeeCode == "EMP001" && e.Email == "jane@example.com" && e.FullName == "Jane Doe"
	})).Return(employee.Employee{
		ID: testEmployeeUUID, EmployeeCode: "EMP001", FullName: "Jane Doe",
		Email: "jane@example.com", Department: "Engineering",
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}, nil)

	// Act
	resp, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeID: "  EMP001 ",
		FullName:   "Jane Doe ",
		Email:      " Jane@Example.COM",
		Department: "Engineering",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, testEmployeeUUID, resp.ID)
	assert.Equal(t, "EMP001", resp.EmployeeID)
	assert.Equal(t, "2024-01-02T03:04:05Z", resp.CreatedAt)
	employeeRepo.AssertExpectations(t)
}

func TestEmployeeService_CreateEmployee_ValidationError(t *testing.T) {
	employeeRepo, _, _, svc := newTestService()

	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		EmployeeID: "EMP001",
		Email:      "not-an-email",
	})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	fields := verrs.ToMap()
	assert.Contains(t, fields, validator.FieldFullName)
	assert.Contains(t, fields, validator.FieldDepartment)
	assert.Equal(t, "Enter a valid email address.", fields[validator.FieldEmail])
	employeeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeService_CreateEmployee_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	employeeRepo, _, _, svc := newTestService()
	employeeRepo.On("ExistsByEmployeeCode", ctx, "EMP001").Return(true, nil)

	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		EmployeeID: "EMP001", FullName: "Jane Doe", Email: "jane@example.com", Department: "Eng",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
	employeeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeService_GetEmployee_FallsBackToCode(t *testing.T) {
	ctx := context.Background()
	employeeRepo, _, _, svc := newTestService()

	employeeRepo.On("GetByID", ctx, testEmployeeUUID).Return(employee.Employee{}, employee.ErrEmployeeNotFound)
	employeeRepo.On("GetByEmployeeCode", ctx, testEmployeeUUID).Return(employee.Employee{
		ID: "other", EmployeeCode: testEmployeeUUID,
	}, nil)

	resp, err := svc.GetEmployee(ctx, testEmployeeUUID)

	require.NoError(t, err)
	assert.Equal(t, "other", resp.ID)
	employeeRepo.AssertExpectations(t)
}

func TestEmployeeService_GetEmployee_InvalidKey(t *testing.T) {
	_, _, _, svc := newTestService()

	for _, key := range []string{"", "null", "undefined"} {
		_, err := svc.GetEmployee(context.Background(), key)
		assert.ErrorIs(t, err, employee.ErrInvalidEmployeeKey, "key %q", key)
	}
}

func TestEmployeeService_DeleteEmployee_CascadesAttendance(t *testing.T) {
	ctx := context.Background()
	employeeRepo, attendanceRepo, tx, svc := newTestService()

	employeeRepo.On("GetByEmployeeCode", ctx, "EMP001").Return(employee.Employee{
		ID: testEmployeeUUID, EmployeeCode: "EMP001",
	}, nil)
	attendanceRepo.On("DeleteByEmployeeID", ctx, testEmployeeUUID).Return(int64(3), nil)
	employeeRepo.On("Delete", ctx, testEmployeeUUID).Return(nil)

	// Act
	resp, err := svc.DeleteEmployee(ctx, "EMP001")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "EMP001", resp.EmployeeID)
	assert.Equal(t, int64(3), resp.AttendanceRemoved)
	assert.Equal(t, 1, tx.Calls)
	employeeRepo.AssertExpectations(t)
	attendanceRepo.AssertExpectations(t)
}

func TestEmployeeService_DeleteEmployee_NotFound(t *testing.T) {
	ctx := context.Background()
	employeeRepo, attendanceRepo, _, svc := newTestService()
	employeeRepo.On("GetByEmployeeCode", ctx, "EMP404").Return(employee.Employee{}, employee.ErrEmployeeNotFound)

	_, err := svc.DeleteEmployee(ctx, "EMP404")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	attendanceRepo.AssertNotCalled(t, "DeleteByEmployeeID", mock.Anything, mock.Anything)
}

func TestEmployeeService_ListEmployees_StorageError(t *testing.T) {
	ctx := context.Background()
	employeeRepo, _, _, svc := newTestService()
	boom := errors.New("connection refused")
	employeeRepo.On("List", ctx).Return(nil, boom)

	_, err := svc.ListEmployees(ctx)

	assert.ErrorIs(t, err, boom)
}
