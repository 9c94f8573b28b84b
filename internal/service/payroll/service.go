package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/logger"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	tx          database.Transactor
	payrollRepo payroll.PayrollRepository
	userRepo    user.UserRepository
	now         func() time.Time
}

func NewPayrollService(
	tx database.Transactor,
	payrollRepo payroll.PayrollRepository,
	userRepo user.UserRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:          tx,
		payrollRepo: payrollRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

func (s *PayrollServiceImpl) getRecord(ctx context.Context, employeeID string) (payroll.Record, user.User, error) {
	u, err := s.userRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return payroll.Record{}, user.User{}, payroll.ErrEmployeeNotFound
		}
		return payroll.Record{}, user.User{}, fmt.Errorf("failed to get employee: %w", err)
	}

	rec, err := s.payrollRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return payroll.Record{}, user.User{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, user.User{}, fmt.Errorf("failed to get payroll record: %w", err)
	}
	return rec, u, nil
}

// Get implements payroll.PayrollService. An empty employeeID means the caller.
func (s *PayrollServiceImpl) Get(ctx context.Context, actor user.Principal, employeeID string) (payroll.PayrollRecordResponse, error) {
	if employeeID == "" {
		employeeID = actor.UserID
	}
	if !actor.CanAccessEmployee(employeeID, user.PermissionPayrollViewAll) {
		return payroll.PayrollRecordResponse{}, user.ErrInsufficientPermissions
	}

	rec, u, err := s.getRecord(ctx, employeeID)
	if err != nil {
		return payroll.PayrollRecordResponse{}, err
	}
	return payroll.ToPayrollRecordResponse(rec, u.Name, u.Department), nil
}

// List implements payroll.PayrollService. Callers without the view-all
// capability get only their own record.
func (s *PayrollServiceImpl) List(ctx context.Context, actor user.Principal) (payroll.ListPayrollResponse, error) {
	var records []payroll.Record
	if actor.Can(user.PermissionPayrollViewAll) {
		all, err := s.payrollRepo.List(ctx)
		if err != nil {
			return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list payroll records: %w", err)
		}
		records = all
	} else {
		own, err := s.payrollRepo.GetByEmployee(ctx, actor.UserID)
		if err != nil && !errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return payroll.ListPayrollResponse{}, fmt.Errorf("failed to get payroll record: %w", err)
		}
		if err == nil {
			records = append(records, own)
		}
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return payroll.ListPayrollResponse{}, fmt.Errorf("failed to list users: %w", err)
	}
	byID := make(map[string]user.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	resp := payroll.ListPayrollResponse{
		Records:         make([]payroll.PayrollRecordResponse, 0, len(records)),
		TotalNetPayroll: decimal.Zero,
	}
	for _, rec := range records {
		u := byID[rec.EmployeeID]
		resp.Records = append(resp.Records, payroll.ToPayrollRecordResponse(rec, u.Name, u.Department))
		resp.TotalNetPayroll = resp.TotalNetPayroll.Add(rec.NetSalary)
	}
	return resp, nil
}

// Update implements payroll.PayrollService. The record and the employee's
// salary are written together.
func (s *PayrollServiceImpl) Update(ctx context.Context, actor user.Principal, req payroll.UpdatePayrollRecordRequest) (payroll.PayrollRecordResponse, error) {
	if !actor.Can(user.PermissionPayrollManage) {
		return payroll.PayrollRecordResponse{}, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return payroll.PayrollRecordResponse{}, err
	}

	var (
		updated  payroll.Record
		employee user.User
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		rec, err := s.payrollRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}
		employee, err = s.userRepo.GetByID(ctx, rec.EmployeeID)
		if err != nil {
			return err
		}

		req.Apply(&rec)
		rec.UpdatedAt = s.now().UTC()
		if err := s.payrollRepo.Update(ctx, rec); err != nil {
			return err
		}
		if err := s.userRepo.UpdateSalary(ctx, rec.EmployeeID, rec.BasicSalary.InexactFloat64()); err != nil {
			return err
		}
		updated = rec
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, payroll.ErrPayrollRecordNotFound):
			return payroll.PayrollRecordResponse{}, payroll.ErrPayrollRecordNotFound
		case errors.Is(err, user.ErrUserNotFound):
			return payroll.PayrollRecordResponse{}, payroll.ErrEmployeeNotFound
		}
		return payroll.PayrollRecordResponse{}, fmt.Errorf("failed to update payroll record: %w", err)
	}

	logger.From(ctx).Info("payroll record updated",
		"payroll_id", updated.ID,
		"employee_id", updated.EmployeeID,
		"net_salary", updated.NetSalary.StringFixed(2),
		"updated_by", actor.UserID,
	)
	return payroll.ToPayrollRecordResponse(updated, employee.Name, employee.Department), nil
}

// Payslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, actor user.Principal, employeeID string, now time.Time) (payroll.Payslip, error) {
	if employeeID == "" {
		employeeID = actor.UserID
	}
	if !actor.CanAccessEmployee(employeeID, user.PermissionPayrollViewAll) {
		return payroll.Payslip{}, user.ErrInsufficientPermissions
	}

	rec, u, err := s.getRecord(ctx, employeeID)
	if err != nil {
		return payroll.Payslip{}, err
	}

	body, err := RenderPayslip(rec, u, now)
	if err != nil {
		return payroll.Payslip{}, err
	}

	return payroll.Payslip{
		FileName:    payroll.PayslipFileName(u.Name, rec.Month),
		ContentType: "text/html; charset=utf-8",
		Body:        body,
	}, nil
}
