package payroll

import (
	"context"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
)

type PayrollService interface {
	Get(ctx context.Context, actor user.Principal, employeeID string) (PayrollRecordResponse, error)
	List(ctx context.Context, actor user.Principal) (ListPayrollResponse, error)
	Update(ctx context.Context, actor user.Principal, req UpdatePayrollRecordRequest) (PayrollRecordResponse, error)
	Payslip(ctx context.Context, actor user.Principal, employeeID string, now time.Time) (Payslip, error)
}
