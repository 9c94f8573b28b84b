package payroll

import "errors"

var (
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrPayrollRecordExists   = errors.New("payroll record already exists for this employee")
	ErrEmployeeNotFound      = errors.New("employee not found")
)
