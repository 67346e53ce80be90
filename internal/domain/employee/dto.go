package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Normalize trims every field and lower-cases the email.
func (r *CreateEmployeeRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Department = strings.TrimSpace(r.Department)
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   validator.FieldEmployeeID,
			Message: "Employee ID is required and cannot be empty.",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   validator.FieldFullName,
			Message: "Full name is required and cannot be empty.",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   validator.FieldEmail,
			Message: "Email is required and cannot be empty.",
		})
	} else if !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		errs = append(errs, validator.ValidationError{
			Field:   validator.FieldEmail,
			Message: "Enter a valid email address.",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   validator.FieldDepartment,
			Message: "Department is required and cannot be empty.",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	CreatedAt  string `json:"created_at"`
}

type DeleteEmployeeResponse struct {
	EmployeeID        string
	AttendanceRemoved int64
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         emp.ID,
		EmployeeID: emp.EmployeeCode,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Department: emp.Department,
		CreatedAt:  emp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
