package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
)

// Stores is the set of repositories the dataset is written into.
type Stores struct {
	Users      user.UserRepository
	Attendance attendance.AttendanceRepository
	Leaves     leave.LeaveRequestRepository
	Payroll    payroll.PayrollRepository
}

// Seed writes ds into empty stores. It is a no-op when users already exist.
func Seed(ctx context.Context, s Stores, ds Dataset) error {
	n, err := s.Users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		slog.Debug("seed skipped, store not empty", "users", n)
		return nil
	}

	for _, u := range ds.Users {
		if _, err := s.Users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	for _, r := range ds.Attendance {
		if _, err := s.Attendance.Create(ctx, r); err != nil {
			return fmt.Errorf("seed attendance %s: %w", r.ID, err)
		}
	}
	for _, l := range ds.Leaves {
		if _, err := s.Leaves.Create(ctx, l); err != nil {
			return fmt.Errorf("seed leave %s: %w", l.ID, err)
		}
	}
	for _, p := range ds.Payroll {
		if _, err := s.Payroll.Create(ctx, p); err != nil {
			return fmt.Errorf("seed payroll %s: %w", p.ID, err)
		}
	}

	slog.Info("seed data loaded",
		"users", len(ds.Users),
		"attendance", len(ds.Attendance),
		"leave_requests", len(ds.Leaves),
		"payroll", len(ds.Payroll),
	)
	return nil
}
