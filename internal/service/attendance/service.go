package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
}

func NewAttendanceService(repo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{AttendanceRepository: repo}
}

// List implements attendance.AttendanceService. An empty employee means the caller.
func (s *AttendanceServiceImpl) List(ctx context.Context, actor user.Principal, req attendance.ListAttendanceRequest) ([]attendance.RecordResponse, error) {
	if req.EmployeeID == "" {
		req.EmployeeID = actor.UserID
	}
	from, to, err := req.Validate()
	if err != nil {
		return nil, err
	}
	if !actor.CanAccessEmployee(req.EmployeeID, user.PermissionAttendanceViewAll) {
		return nil, user.ErrInsufficientPermissions
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, req.EmployeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	resp := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, attendance.ToRecordResponse(r))
	}
	return resp, nil
}

// Summary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Summary(ctx context.Context, actor user.Principal, employeeID string) (attendance.SummaryResponse, error) {
	if employeeID == "" {
		employeeID = actor.UserID
	}
	if !actor.CanAccessEmployee(employeeID, user.PermissionAttendanceViewAll) {
		return attendance.SummaryResponse{}, user.ErrInsufficientPermissions
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID, time.Time{}, time.Time{})
	if err != nil {
		return attendance.SummaryResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	return attendance.Summarize(employeeID, records), nil
}

// PresentOn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PresentOn(ctx context.Context, date time.Time) (int, error) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	records, err := s.AttendanceRepository.ListByDate(ctx, day)
	if err != nil {
		return 0, fmt.Errorf("failed to list attendance: %w", err)
	}

	present := 0
	for _, r := range records {
		if r.Status == attendance.StatusPresent {
			present++
		}
	}
	return present, nil
}
