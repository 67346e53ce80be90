package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee with this employee id already exists")
	ErrInvalidEmployeeKey = errors.New("invalid employee id")
)
