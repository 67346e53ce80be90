// Package view projects fetched records into what the lists, filters and
// pickers show. Every projection is recomputed from the records it is given.
package view

import (
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/client"
)

type Option struct {
	Value string
	Label string
}

// EmployeeOptions builds the employee picker. Employees with neither a
// server ID nor a code are skipped; the value prefers the server ID.
func EmployeeOptions(employees []client.Employee) []Option {
	options := make([]Option, 0, len(employees))
	for _, emp := range employees {
		if emp.ID == "" && emp.EmployeeID == "" {
			continue
		}
		options = append(options, Option{
			Value: Key(emp),
			Label: fmt.Sprintf("%s (%s)", orDefault(emp.FullName, "Unknown"), orDefault(emp.EmployeeID.String(), "-")),
		})
	}
	return options
}

// Key is the identifier used to address an employee: the server ID when set,
// else the employee code.
func Key(emp client.Employee) string {
	if emp.ID != "" {
		return emp.ID.String()
	}
	return emp.EmployeeID.String()
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
