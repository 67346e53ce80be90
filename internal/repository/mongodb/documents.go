package mongodb

import (
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/attendance"
	"github.com/cmlabs-hris/hrms-lite/internal/domain/employee"
)

type employeeDocument struct {
	ID           string    `bson:"_id"`
	EmployeeCode string    `bson:"employee_id"`
	FullName     string    `bson:"full_name"`
	Email        string    `bson:"email"`
	Department   string    `bson:"department"`
	CreatedAt    time.Time `bson:"created_at"`
}

func (d employeeDocument) toEntity() employee.Employee {
	return employee.Employee{
		ID:           d.ID,
		EmployeeCode: d.EmployeeCode,
		FullName:     d.FullName,
		Email:        d.Email,
		Department:   d.Department,
		CreatedAt:    d.CreatedAt,
	}
}

type attendanceDocument struct {
	ID         string    `bson:"_id"`
	EmployeeID string    `bson:"employee_id"`
	Date       time.Time `bson:"date"`
	Status     string    `bson:"status"`
	CreatedAt  time.Time `bson:"created_at"`

	// Filled by $lookup
	Employee *employeeDocument `bson:"employee,omitempty"`
}

func (d attendanceDocument) toEntity() attendance.Attendance {
	a := attendance.Attendance{
		ID:         d.ID,
		EmployeeID: d.EmployeeID,
		Date:       d.Date.UTC(),
		Status:     attendance.Status(d.Status),
		CreatedAt:  d.CreatedAt,
	}
	if d.Employee != nil {
		a.EmployeeCode = &d.Employee.EmployeeCode
		a.EmployeeName = &d.Employee.FullName
		a.Department = &d.Employee.Department
	}
	return a
}
