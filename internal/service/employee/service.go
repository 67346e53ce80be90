package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/transaction"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	tx             transaction.Manager
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewEmployeeService(
	tx transaction.Manager,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		tx:             tx,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		slog.Error("Failed to list employees", "error", err)
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	results := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		results = append(results, employee.ToResponse(emp))
	}
	return results, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, key string) (employee.EmployeeResponse, error) {
	emp, err := employee.Resolve(ctx, s.employeeRepo, key)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	req.Normalize()

	// Check if employee code already exists
	exists, err := s.employeeRepo.ExistsByEmployeeCode(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check employee code existence: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmployeeCodeExists
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:           uuid.NewString(),
		EmployeeCode: req.EmployeeID,
		FullName:     req.FullName,
		Email:        req.Email,
		Department:   req.Department,
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeCodeExists) {
			return employee.EmployeeResponse{}, err
		}
		slog.Error("Failed to create employee", "employee_id", req.EmployeeID, "error", err)
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Employee created", "id", created.ID, "employee_id", created.EmployeeCode)
	return employee.ToResponse(created), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, key string) (employee.DeleteEmployeeResponse, error) {
	emp, err := employee.Resolve(ctx, s.employeeRepo, key)
	if err != nil {
		return employee.DeleteEmployeeResponse{}, err
	}

	var removed int64
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		n, err := s.attendanceRepo.DeleteByEmployeeID(ctx, emp.ID)
		if err != nil {
			return err
		}
		removed = n
		return s.employeeRepo.Delete(ctx, emp.ID)
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.DeleteEmployeeResponse{}, err
		}
		slog.Error("Failed to delete employee", "id", emp.ID, "error", err)
		return employee.DeleteEmployeeResponse{}, fmt.Errorf("failed to delete employee: %w", err)
	}

	return employee.DeleteEmployeeResponse{
		EmployeeID:        emp.EmployeeCode,
		AttendanceRemoved: removed,
	}, nil
}
