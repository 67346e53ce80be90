package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldErrors_KeepsValidationOrder(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "full_name", Message: "required"},
		{Field: "email", Message: "missing"},
		{Field: "full_name", Message: "too short"},
		{Field: "department", Message: "required"},
	}

	body, err := json.Marshal(NewFieldErrors(errs))

	require.NoError(t, err)
	assert.Equal(t, `{"full_name":["required","too short"],"email":["missing"],"department":["required"]}`, string(body))
}

func TestList_IncludesZeroCount(t *testing.T) {
	rec := httptest.NewRecorder()

	List(rec, 0, []string{})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"count":0,"data":[]}`, rec.Body.String())
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        validator.ValidationErrors{{Field: "email", Message: "Enter a valid email address."}},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"errors":{"email":["Enter a valid email address."]}}`,
		},
		{
			name:       "duplicate code",
			err:        employee.ErrEmployeeCodeExists,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"errors":{"employee_id":["Employee with this Employee ID already exists."]}}`,
		},
		{
			name:       "employee not found",
			err:        fmt.Errorf("lookup: %w", employee.ErrEmployeeNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false,"error":"Employee not found."}`,
		},
		{
			name:       "filter employee not found",
			err:        attendance.ErrFilterEmployeeNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false,"error":"Employee not found."}`,
		},
		{
			name:       "invalid employee key",
			err:        employee.ErrInvalidEmployeeKey,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"Invalid employee ID."}`,
		},
		{
			name:       "already marked",
			err:        &attendance.DuplicateError{EmployeeName: "Jane", Date: "2024-05-01"},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"success":false,"error":"Attendance already marked for Jane on 2024-05-01. Cannot mark attendance twice for the same date."}`,
		},
		{
			name:       "attendance not found",
			err:        attendance.ErrAttendanceNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"success":false,"error":"Attendance record not found."}`,
		},
		{
			name:       "unexpected",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"success":false,"error":"Failed to do it. Please try again."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			HandleError(rec, tt.err, "Failed to do it. Please try again.")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
