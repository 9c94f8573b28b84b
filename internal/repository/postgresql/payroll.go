package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Amounts cross the wire as text so decimal keeps exact cents.
const payrollColumns = `id, employee_id, month, basic_salary::text, allowances::text,
		deductions::text, net_salary::text, updated_at`

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

func scanPayroll(row pgx.Row) (payroll.Record, error) {
	var (
		rec                          payroll.Record
		basic, allow, deduct, netStr string
		updatedAt                    *time.Time
	)
	if err := row.Scan(&rec.ID, &rec.EmployeeID, &rec.Month, &basic, &allow, &deduct, &netStr, &updatedAt); err != nil {
		return payroll.Record{}, err
	}

	var err error
	for _, f := range []struct {
		dst *decimal.Decimal
		src string
	}{
		{&rec.BasicSalary, basic},
		{&rec.Allowances, allow},
		{&rec.Deductions, deduct},
		{&rec.NetSalary, netStr},
	} {
		if *f.dst, err = decimal.NewFromString(f.src); err != nil {
			return payroll.Record{}, err
		}
	}
	if updatedAt != nil {
		rec.UpdatedAt = updatedAt.UTC()
	}
	return rec, nil
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Create implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Create(ctx context.Context, record payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (
			id, employee_id, month, basic_salary, allowances, deductions, net_salary, updated_at
		) VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6::numeric, $7::numeric, $8)
		RETURNING ` + payrollColumns

	created, err := scanPayroll(q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Month,
		record.BasicSalary.String(),
		record.Allowances.String(),
		record.Deductions.String(),
		record.NetSalary.String(),
		nullTime(record.UpdatedAt),
	))
	if err != nil {
		if isUniqueViolation(err) {
			return payroll.Record{}, payroll.ErrPayrollRecordExists
		}
		return payroll.Record{}, err
	}
	return created, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	return r.getOne(ctx, `SELECT `+payrollColumns+` FROM payroll_records WHERE id = $1`, id)
}

// GetByEmployee implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string) (payroll.Record, error) {
	return r.getOne(ctx, `SELECT `+payrollColumns+` FROM payroll_records WHERE employee_id = $1`, employeeID)
}

func (r *payrollRepositoryImpl) getOne(ctx context.Context, query string, arg string) (payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	rec, err := scanPayroll(q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, err
	}
	return rec, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) List(ctx context.Context) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+payrollColumns+` FROM payroll_records ORDER BY LENGTH(employee_id), employee_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []payroll.Record{}
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Update implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) Update(ctx context.Context, record payroll.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_records
		SET basic_salary = $2::numeric,
			allowances = $3::numeric,
			deductions = $4::numeric,
			net_salary = $5::numeric,
			updated_at = $6
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		record.ID,
		record.BasicSalary.String(),
		record.Allowances.String(),
		record.Deductions.String(),
		record.NetSalary.String(),
		nullTime(record.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollRecordNotFound
	}
	return nil
}
