package employee

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Resolve looks an employee up by key, which is either the server ID or the
// employee code. An ID-shaped key that matches nothing is retried as a code.
func Resolve(ctx context.Context, repo EmployeeRepository, key string) (Employee, error) {
	key = strings.TrimSpace(key)
	if key == "" || key == "null" || key == "undefined" {
		return Employee{}, ErrInvalidEmployeeKey
	}

	if _, err := uuid.Parse(key); err == nil {
		emp, err := repo.GetByID(ctx, key)
		if err == nil || !errors.Is(err, ErrEmployeeNotFound) {
			return emp, err
		}
	}

	return repo.GetByEmployeeCode(ctx, key)
}
