package view

import (
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/client"
)

var (
	EmployeeColumns   = []string{"Employee ID", "Full Name", "Email", "Department"}
	AttendanceColumns = []string{"ID", "Employee ID", "Employee Name", "Department", "Date", "Status"}
)

func EmployeeRows(employees []client.Employee) [][]string {
	rows := make([][]string, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, []string{emp.EmployeeID.String(), emp.FullName, emp.Email, emp.Department})
	}
	return rows
}

func AttendanceRows(records []client.AttendanceRecord) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ID.String(),
			r.EmployeeID.String(),
			r.EmployeeName,
			r.Department,
			FormatDisplayDate(r.Date),
			r.Status,
		})
	}
	return rows
}

// FormatDisplayDate renders a YYYY-MM-DD date as "Jan 2, 2006". Anything
// else is returned as is.
func FormatDisplayDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}
