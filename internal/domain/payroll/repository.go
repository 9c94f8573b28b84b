package payroll

import "context"

type PayrollRepository interface {
	// Create fails with ErrPayrollRecordExists when the employee already has a record.
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	GetByEmployee(ctx context.Context, employeeID string) (Record, error)
	// List returns records ordered by employee ID.
	List(ctx context.Context) ([]Record, error)
	Update(ctx context.Context, record Record) error
}
