package employee

import (
	"time"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	Department   string
	CreatedAt    time.Time
}
