package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/database"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id          UUID PRIMARY KEY,
		employee_id VARCHAR(50) NOT NULL UNIQUE,
		full_name   VARCHAR(200) NOT NULL,
		email       VARCHAR(254) NOT NULL,
		department  VARCHAR(100) NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id          UUID PRIMARY KEY,
		employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		date        DATE NOT NULL,
		status      VARCHAR(10) NOT NULL CHECK (status IN ('Present', 'Absent')),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (employee_id, date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date DESC)`,
}

// EnsureSchema creates the employees and attendance tables when missing
func EnsureSchema(ctx context.Context, db *database.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
