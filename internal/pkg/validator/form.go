package validator

// Field names shared by the entry forms and the wire format.
const (
	FieldEmployeeID = "employee_id"
	FieldFullName   = "full_name"
	FieldEmail      = "email"
	FieldDepartment = "department"
	FieldDate       = "date"
	FieldStatus     = "status"
)

const (
	MsgEmployeeIDRequired = "Employee ID is required"
	MsgFullNameRequired   = "Full name is required"
	MsgEmailRequired      = "Email is required"
	MsgEmailInvalid       = "Please enter a valid email address"
	MsgDepartmentRequired = "Department is required"

	MsgSelectEmployee = "Please select an employee"
	MsgDateRequired   = "Date is required"
	MsgSelectStatus   = "Please select attendance status"
)

// ValidateEmployeeForm checks an employee draft. A missing key counts as an
// empty value.
func ValidateEmployeeForm(draft map[string]string) Result {
	var errs ValidationErrors

	if !IsRequired(draft[FieldEmployeeID]) {
		errs = append(errs, ValidationError{Field: FieldEmployeeID, Message: MsgEmployeeIDRequired})
	}

	if !IsRequired(draft[FieldFullName]) {
		errs = append(errs, ValidationError{Field: FieldFullName, Message: MsgFullNameRequired})
	}

	if !IsRequired(draft[FieldEmail]) {
		errs = append(errs, ValidationError{Field: FieldEmail, Message: MsgEmailRequired})
	} else if !IsValidEmail(draft[FieldEmail]) {
		errs = append(errs, ValidationError{Field: FieldEmail, Message: MsgEmailInvalid})
	}

	if !IsRequired(draft[FieldDepartment]) {
		errs = append(errs, ValidationError{Field: FieldDepartment, Message: MsgDepartmentRequired})
	}

	return errs.ToResult()
}

// ValidateAttendanceForm checks an attendance draft. The date is only required
// to be present; it is not checked for being a real or past calendar day.
func ValidateAttendanceForm(draft map[string]string) Result {
	var errs ValidationErrors

	if !IsRequired(draft[FieldEmployeeID]) {
		errs = append(errs, ValidationError{Field: FieldEmployeeID, Message: MsgSelectEmployee})
	}

	if !IsRequired(draft[FieldDate]) {
		errs = append(errs, ValidationError{Field: FieldDate, Message: MsgDateRequired})
	}

	if !IsRequired(draft[FieldStatus]) {
		errs = append(errs, ValidationError{Field: FieldStatus, Message: MsgSelectStatus})
	}

	return errs.ToResult()
}
