package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID joined with its employee
	GetByID(ctx context.Context, id string) (Attendance, error)

	// ExistsByEmployeeAndDate is used to prevent marking the same day twice
	ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (bool, error)

	// List retrieves attendance records, newest first
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	Delete(ctx context.Context, id string) error

	// DeleteByEmployeeID removes every record of an employee and reports how many went
	DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error)
}
