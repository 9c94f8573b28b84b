package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/calendar"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
)

type CalendarServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
}

func NewCalendarService(attendanceRepo attendance.AttendanceRepository, leaveRepo leave.LeaveRequestRepository) calendar.CalendarService {
	return &CalendarServiceImpl{attendanceRepo: attendanceRepo, leaveRepo: leaveRepo}
}

// Month implements calendar.CalendarService. It reads both stores on every
// call; nothing is cached.
func (s *CalendarServiceImpl) Month(ctx context.Context, actor user.Principal, employeeID string, year, month int) (calendar.MonthView, error) {
	if employeeID == "" {
		employeeID = actor.UserID
	}
	if !actor.CanAccessEmployee(employeeID, user.PermissionAttendanceViewAll) {
		return calendar.MonthView{}, user.ErrInsufficientPermissions
	}

	// Validate before touching storage.
	if _, err := calendar.Aggregate(year, month, employeeID, nil, nil); err != nil {
		return calendar.MonthView{}, err
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, first, last)
	if err != nil {
		return calendar.MonthView{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	leaves, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return calendar.MonthView{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return calendar.Aggregate(year, month, employeeID, records, leaves)
}
