package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees returns every employee, newest first
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by server ID or employee code
	GetEmployee(ctx context.Context, key string) (EmployeeResponse, error)

	// CreateEmployee creates a new employee with a unique employee code
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee and all of their attendance records
	DeleteEmployee(ctx context.Context, key string) (DeleteEmployeeResponse, error)
}
