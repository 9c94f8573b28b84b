package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create fails with ErrDuplicateRecord when (EmployeeID, Date) already exists.
	Create(ctx context.Context, record Record) (Record, error)
	// ListByEmployee returns records in date-ascending order; zero from/to are unbounded.
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
}
