package view

import "sync"

// AttendanceFilter is the "filter by employee" control. It never filters
// locally: every selection is passed on so the records are fetched again.
type AttendanceFilter struct {
	mu       sync.Mutex
	selected string
	onChange func(employeeID string)
}

func NewAttendanceFilter(onChange func(employeeID string)) *AttendanceFilter {
	return &AttendanceFilter{onChange: onChange}
}

// Select records value and notifies the listener. An empty value means all
// employees.
func (f *AttendanceFilter) Select(value string) {
	f.mu.Lock()
	f.selected = value
	onChange := f.onChange
	f.mu.Unlock()

	if onChange != nil {
		onChange(value)
	}
}

func (f *AttendanceFilter) Selected() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selected
}

func (f *AttendanceFilter) EmptyMessage() string {
	if f.Selected() != "" {
		return "No attendance records found for this employee."
	}
	return "No attendance records found. Mark attendance above."
}

const EmptyEmployeesMessage = "No employees found. Add your first employee above."
