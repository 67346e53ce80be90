package attendance

import (
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

var statuses = []string{string(StatusPresent), string(StatusAbsent)}

// IsValid reports whether s is one of the accepted statuses. Matching is case sensitive.
func (s Status) IsValid() bool {
	return validator.IsInSlice(string(s), statuses)
}

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time

	// Joined from employees
	EmployeeCode *string
	EmployeeName *string
	Department   *string
}
