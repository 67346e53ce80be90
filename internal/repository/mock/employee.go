// Package mock holds testify mocks of the repository interfaces.
package mock

import (
	"context"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/stretchr/testify/mock"
)

type EmployeeRepository struct {
	mock.Mock
}

var _ employee.EmployeeRepository = (*EmployeeRepository)(nil)

func (m *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) GetByEmployeeCode(ctx context.Context, employeeCode string) (employee.Employee, error) {
	args := m.Called(ctx, employeeCode)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) ExistsByEmployeeCode(ctx context.Context, employeeCode string) (bool, error) {
	args := m.Called(ctx, employeeCode)
	return args.Bool(0), args.Error(1)
}

func (m *EmployeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	args := m.Called(ctx, newEmployee)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]employee.Employee)
	return list, args.Error(1)
}

func (m *EmployeeRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
