package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound     = errors.New("attendance record not found")
	ErrAlreadyMarked          = errors.New("attendance already marked for this date")
	ErrInvalidAttendanceKey   = errors.New("invalid attendance id")
	ErrFilterEmployeeNotFound = errors.New("employee not found")
)

// DuplicateError reports a second mark for the same employee and day.
type DuplicateError struct {
	EmployeeName string
	Date         string
}

func (e *DuplicateError) Error() string {
	return "Attendance already marked for " + e.EmployeeName + " on " + e.Date +
		". Cannot mark attendance twice for the same date."
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrAlreadyMarked
}
