package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. fallback is the message
// sent when err is not a known domain error.
func HandleError(w http.ResponseWriter, err error, fallback string) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs)
		return
	}

	var duplicate *attendance.DuplicateError
	if errors.As(err, &duplicate) {
		BadRequest(w, duplicate.Error())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		ValidationError(w, validator.ValidationErrors{{
			Field:   validator.FieldEmployeeID,
			Message: "Employee with this Employee ID already exists.",
		}})
	case errors.Is(err, employee.ErrInvalidEmployeeKey):
		BadRequest(w, "Invalid employee ID.")
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, attendance.ErrFilterEmployeeNotFound):
		NotFound(w, "Employee not found.")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found.")
	case errors.Is(err, attendance.ErrInvalidAttendanceKey):
		BadRequest(w, "Invalid attendance ID.")
	case errors.Is(err, attendance.ErrAlreadyMarked):
		BadRequest(w, "Attendance already marked for this date.")

	// Default
	default:
		InternalServerError(w, fallback)
	}
}
