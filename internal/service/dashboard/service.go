package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/notification"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	payrollRepo    payroll.PayrollRepository
}

func NewDashboardService(
	userRepo user.UserRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	payrollRepo payroll.PayrollRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		payrollRepo:    payrollRepo,
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, actor user.Principal, today time.Time) (dashboard.DashboardResponse, error) {
	if actor.Role == user.RoleAdmin {
		view, err := s.adminView(ctx, today)
		if err != nil {
			return dashboard.DashboardResponse{}, err
		}
		return dashboard.DashboardResponse{Role: string(actor.Role), Admin: &view}, nil
	}

	view, err := s.employeeView(ctx, actor)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}
	return dashboard.DashboardResponse{Role: string(actor.Role), Employee: &view}, nil
}

// employeeView runs its independent reads in parallel.
func (s *DashboardServiceImpl) employeeView(ctx context.Context, actor user.Principal) (dashboard.EmployeeDashboardResponse, error) {
	var (
		me      user.User
		summary attendance.SummaryResponse
		leaves  []leave.LeaveRequest
		net     = decimal.Zero
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		u, err := s.userRepo.GetByID(ctx, actor.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		me = u
		return nil
	})

	g.Go(func() error {
		records, err := s.attendanceRepo.ListByEmployee(ctx, actor.UserID, time.Time{}, time.Time{})
		if err != nil {
			return fmt.Errorf("list attendance: %w", err)
		}
		summary = attendance.Summarize(actor.UserID, records)
		return nil
	})

	g.Go(func() error {
		list, err := s.leaveRepo.ListByEmployee(ctx, actor.UserID)
		if err != nil {
			return fmt.Errorf("list leave requests: %w", err)
		}
		leaves = list
		return nil
	})

	g.Go(func() error {
		rec, err := s.payrollRepo.GetByEmployee(ctx, actor.UserID)
		if errors.Is(err, payroll.ErrPayrollRecordNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get payroll: %w", err)
		}
		net = rec.NetSalary
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return dashboard.EmployeeDashboardResponse{}, user.ErrUserNotFound
		}
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to build dashboard: %w", err)
	}

	pending := 0
	for _, l := range leaves {
		if l.Status == leave.LeaveRequestStatusPending {
			pending++
		}
	}

	return dashboard.EmployeeDashboardResponse{
		EmployeeID:        me.ID,
		Name:              me.Name,
		AttendanceRate:    summary.AttendanceRate,
		PresentDays:       summary.PresentDays,
		PendingLeaveCount: pending,
		NoticeCount:       len(notification.Project(leaves, actor.UserID, actor.Role)),
		NetSalary:         net,
	}, nil
}

func (s *DashboardServiceImpl) adminView(ctx context.Context, today time.Time) (dashboard.AdminDashboardResponse, error) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	resp := dashboard.AdminDashboardResponse{
		Date:            day.Format(validator.DateLayout),
		TotalNetPayroll: decimal.Zero,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.userRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		resp.TotalEmployees = n
		return nil
	})

	g.Go(func() error {
		pending, err := s.leaveRepo.ListPending(ctx)
		if err != nil {
			return fmt.Errorf("list pending leave: %w", err)
		}
		resp.PendingLeaveCount = len(pending)
		return nil
	})

	g.Go(func() error {
		records, err := s.attendanceRepo.ListByDate(ctx, day)
		if err != nil {
			return fmt.Errorf("list attendance: %w", err)
		}
		for _, r := range records {
			if r.Status == attendance.StatusPresent {
				resp.PresentToday++
			}
		}
		return nil
	})

	g.Go(func() error {
		records, err := s.payrollRepo.List(ctx)
		if err != nil {
			return fmt.Errorf("list payroll: %w", err)
		}
		total := decimal.Zero
		for _, r := range records {
			total = total.Add(r.NetSalary)
		}
		resp.TotalNetPayroll = total
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to build dashboard: %w", err)
	}
	return resp, nil
}
