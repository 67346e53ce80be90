package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validEmployeeDraft() map[string]string {
	return map[string]string{
		FieldEmployeeID: "E1",
		FieldFullName:   "Jane Doe",
		FieldEmail:      "jane@x.com",
		FieldDepartment: "Eng",
	}
}

func TestValidateEmployeeForm_Valid(t *testing.T) {
	result := ValidateEmployeeForm(validEmployeeDraft())

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}

func TestValidateEmployeeForm_ReportsExactlyMissingFields(t *testing.T) {
	fields := []string{FieldEmployeeID, FieldFullName, FieldEmail, FieldDepartment}

	// every subset of missing fields
	for mask := 1; mask < 1<<len(fields); mask++ {
		draft := validEmployeeDraft()
		var missing []string
		for i, f := range fields {
			if mask&(1<<i) != 0 {
				draft[f] = "   "
				missing = append(missing, f)
			}
		}

		result := ValidateEmployeeForm(draft)

		assert.False(t, result.IsValid, "mask %b", mask)
		assert.Len(t, result.Errors, len(missing), "mask %b", mask)
		for _, f := range missing {
			assert.Contains(t, result.Errors, f, "mask %b", mask)
		}
	}
}

func TestValidateEmployeeForm_EmailMessages(t *testing.T) {
	draft := validEmployeeDraft()
	delete(draft, FieldEmail)
	assert.Equal(t, MsgEmailRequired, ValidateEmployeeForm(draft).Errors[FieldEmail])

	draft[FieldEmail] = "john@@x"
	result := ValidateEmployeeForm(draft)
	assert.False(t, result.IsValid)
	assert.Equal(t, MsgEmailInvalid, result.Errors[FieldEmail])
	assert.Len(t, result.Errors, 1)
}

func TestValidateAttendanceForm(t *testing.T) {
	result := ValidateAttendanceForm(map[string]string{
		FieldEmployeeID: "",
		FieldDate:       "2024-05-01",
		FieldStatus:     "Present",
	})
	assert.False(t, result.IsValid)
	assert.Equal(t, map[string]string{FieldEmployeeID: MsgSelectEmployee}, result.Errors)

	result = ValidateAttendanceForm(map[string]string{})
	assert.Equal(t, MsgSelectEmployee, result.Errors[FieldEmployeeID])
	assert.Equal(t, MsgDateRequired, result.Errors[FieldDate])
	assert.Equal(t, MsgSelectStatus, result.Errors[FieldStatus])

	// not a real calendar day, still accepted client-side
	result = ValidateAttendanceForm(map[string]string{
		FieldEmployeeID: "E1",
		FieldDate:       "2024-02-31",
		FieldStatus:     "Absent",
	})
	assert.True(t, result.IsValid)
}
