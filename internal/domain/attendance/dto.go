package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`

	// Set by Validate
	ParsedDate time.Time `json:"-"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   validator.FieldEmployeeID,
			Message: "Employee is required.",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   validator.FieldDate,
			Message: "Date is required.",
		})
	} else if date, ok := validator.IsValidDate(strings.TrimSpace(r.Date)); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   validator.FieldDate,
			Message: "Date has wrong format. Use one of these formats instead: YYYY-MM-DD.",
		})
	} else {
		r.ParsedDate = date
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   validator.FieldStatus,
			Message: "Status is required.",
		})
	} else if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   validator.FieldStatus,
			Message: "Status must be one of: Present, Absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	// EmployeeKey is a server ID or employee code as sent by the client
	EmployeeKey string

	// EmployeeID is the resolved server ID, set by the service
	EmployeeID string
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   *string `json:"employee_id"`
	EmployeeName *string `json:"employee_name"`
	Department   *string `json:"department"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeCode,
		EmployeeName: a.EmployeeName,
		Department:   a.Department,
		Date:         validator.FormatDate(a.Date),
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339),
	}
}
