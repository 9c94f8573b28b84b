package payroll

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

var payslipTemplate = template.Must(template.New("payslip").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string { return "$" + d.StringFixed(2) },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Payslip - {{.Name}} - {{.Month}}</title>
<style>
body { font-family: Arial, sans-serif; max-width: 720px; margin: 40px auto; color: #1f2937; }
h1 { margin-bottom: 4px; }
table { width: 100%; border-collapse: collapse; margin-top: 24px; }
td { padding: 8px; border-bottom: 1px solid #e5e7eb; }
td.amount { text-align: right; }
tr.net td { font-weight: bold; border-top: 2px solid #111827; }
.muted { color: #6b7280; font-size: 0.9em; }
</style>
</head>
<body>
<h1>Dayflow Payslip</h1>
<p class="muted">Pay period: {{.Month}}</p>
<table>
<tr><td>Employee Name</td><td class="amount">{{.Name}}</td></tr>
<tr><td>Employee ID</td><td class="amount">{{.EmployeeID}}</td></tr>
<tr><td>Department</td><td class="amount">{{.Department}}</td></tr>
<tr><td>Position</td><td class="amount">{{.Position}}</td></tr>
</table>
<table>
<tr><td>Basic Salary</td><td class="amount">{{money .Basic}}</td></tr>
<tr><td>Allowances</td><td class="amount">+{{money .Allowances}}</td></tr>
<tr><td>Deductions</td><td class="amount">-{{money .Deductions}}</td></tr>
<tr class="net"><td>Net Salary</td><td class="amount">{{money .Net}}</td></tr>
</table>
<p class="muted">Generated on {{.Generated}}</p>
</body>
</html>
`))

type payslipView struct {
	Name       string
	EmployeeID string
	Department string
	Position   string
	Month      string
	Basic      decimal.Decimal
	Allowances decimal.Decimal
	Deductions decimal.Decimal
	Net        decimal.Decimal
	Generated  string
}

// RenderPayslip renders a self-contained HTML payslip for rec.
func RenderPayslip(rec payroll.Record, u user.User, now time.Time) ([]byte, error) {
	var buf bytes.Buffer
	err := payslipTemplate.Execute(&buf, payslipView{
		Name:       u.Name,
		EmployeeID: u.EmployeeID,
		Department: u.Department,
		Position:   u.Position,
		Month:      rec.Month,
		Basic:      rec.BasicSalary,
		Allowances: rec.Allowances,
		Deductions: rec.Deductions,
		Net:        rec.NetSalary,
		Generated:  now.Format("January 2, 2006"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}
