package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if key := strings.TrimSpace(filter.EmployeeKey); key != "" {
		emp, err := employee.Resolve(ctx, s.employeeRepo, key)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, employee.ErrInvalidEmployeeKey) {
				return nil, attendance.ErrFilterEmployeeNotFound
			}
			return nil, fmt.Errorf("failed to resolve employee filter: %w", err)
		}
		filter.EmployeeID = emp.ID
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		slog.Error("Failed to list attendance", "error", err)
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	results := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		results = append(results, attendance.ToResponse(a))
	}
	return results, nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return attendance.AttendanceResponse{}, attendance.ErrInvalidAttendanceKey
	}

	a, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(a), nil
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := employee.Resolve(ctx, s.employeeRepo, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) || errors.Is(err, employee.ErrInvalidEmployeeKey) {
			return attendance.AttendanceResponse{}, validator.ValidationErrors{{
				Field:   validator.FieldEmployeeID,
				Message: "Employee not found. Please select a valid employee.",
			}}
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	duplicate := &attendance.DuplicateError{
		EmployeeName: emp.FullName,
		Date:         validator.FormatDate(req.ParsedDate),
	}

	exists, err := s.attendanceRepo.ExistsByEmployeeAndDate(ctx, emp.ID, req.ParsedDate)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check attendance: %w", err)
	}
	if exists {
		return attendance.AttendanceResponse{}, duplicate
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		Date:       req.ParsedDate,
		Status:     attendance.Status(req.Status),
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyMarked) {
			return attendance.AttendanceResponse{}, duplicate
		}
		slog.Error("Failed to mark attendance", "employee_id", emp.ID, "error", err)
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to mark attendance: %w", err)
	}

	return attendance.ToResponse(created), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return attendance.ErrInvalidAttendanceKey
	}

	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return err
		}
		slog.Error("Failed to delete attendance", "id", id, "error", err)
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}
