package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one employee's payroll line for a pay month.
type Record struct {
	ID          string
	EmployeeID  string
	Month       string // display label, e.g. "January 2026"
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	UpdatedAt   time.Time
}

// RecomputeNet restores NetSalary = BasicSalary + Allowances - Deductions.
func (r *Record) RecomputeNet() {
	r.NetSalary = r.BasicSalary.Add(r.Allowances).Sub(r.Deductions)
}

// Fixed seed multipliers applied to the basic salary.
var (
	AllowanceRate = decimal.RequireFromString("0.20")
	DeductionRate = decimal.RequireFromString("0.10")
)

// NewRecord builds a record from a basic salary using the fixed multipliers.
func NewRecord(id, employeeID, month string, basic decimal.Decimal) Record {
	r := Record{
		ID:          id,
		EmployeeID:  employeeID,
		Month:       month,
		BasicSalary: basic,
		Allowances:  basic.Mul(AllowanceRate).Round(2),
		Deductions:  basic.Mul(DeductionRate).Round(2),
	}
	r.RecomputeNet()
	return r
}
