package payroll

import (
	"fmt"
	"strings"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdatePayrollRecordRequest struct {
	ID          string           `json:"-"`
	BasicSalary *decimal.Decimal `json:"basic_salary,omitempty"`
	Allowances  *decimal.Decimal `json:"allowances,omitempty"`
	Deductions  *decimal.Decimal `json:"deductions,omitempty"`
}

func (r *UpdatePayrollRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.BasicSalary == nil && r.Allowances == nil && r.Deductions == nil {
		errs.Add("body", "at least one of basic_salary, allowances, deductions is required")
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs.Add("basic_salary", "must be non-negative")
	}
	if r.Allowances != nil && r.Allowances.IsNegative() {
		errs.Add("allowances", "must be non-negative")
	}
	if r.Deductions != nil && r.Deductions.IsNegative() {
		errs.Add("deductions", "must be non-negative")
	}

	return errs.Err()
}

// Apply copies the set fields onto rec and recomputes the net salary.
func (r *UpdatePayrollRecordRequest) Apply(rec *Record) {
	if r.BasicSalary != nil {
		rec.BasicSalary = *r.BasicSalary
	}
	if r.Allowances != nil {
		rec.Allowances = *r.Allowances
	}
	if r.Deductions != nil {
		rec.Deductions = *r.Deductions
	}
	rec.RecomputeNet()
}

type PayrollRecordResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Department   string          `json:"department,omitempty"`
	Month        string          `json:"month"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	Allowances   decimal.Decimal `json:"allowances"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func ToPayrollRecordResponse(r Record, employeeName, department string) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: employeeName,
		Department:   department,
		Month:        r.Month,
		BasicSalary:  r.BasicSalary,
		Allowances:   r.Allowances,
		Deductions:   r.Deductions,
		NetSalary:    r.NetSalary,
		UpdatedAt:    r.UpdatedAt,
	}
}

type ListPayrollResponse struct {
	Records         []PayrollRecordResponse `json:"records"`
	TotalNetPayroll decimal.Decimal         `json:"total_net_payroll"`
}

// Payslip is a rendered, downloadable payslip document.
type Payslip struct {
	FileName    string
	ContentType string
	Body        []byte
}

// PayslipFileName returns Payslip_<Name_With_Underscores>_<Month_With_Underscores>.html.
func PayslipFileName(employeeName, month string) string {
	name := strings.Join(strings.Fields(employeeName), "_")
	m := strings.Join(strings.Fields(month), "_")
	return fmt.Sprintf("Payslip_%s_%s.html", name, m)
}
