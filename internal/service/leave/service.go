package leave

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/logger"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	userRepo  user.UserRepository
	publisher leave.DecisionPublisher
	now       func() time.Time
}

// NewLeaveService wires the leave store. publisher may be nil.
func NewLeaveService(requests leave.LeaveRequestRepository, users user.UserRepository, publisher leave.DecisionPublisher) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: requests,
		userRepo:               users,
		publisher:              publisher,
		now:                    time.Now,
	}
}

func newLeaveID() string {
	return "leave-" + uuid.Must(uuid.NewV7()).String()
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, actor user.Principal, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if !actor.Can(user.PermissionLeaveCreate) {
		return leave.LeaveRequestResponse{}, user.ErrInsufficientPermissions
	}

	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	if req.EmployeeID == "" {
		req.EmployeeID = actor.UserID
	}

	start, end, err := req.Validate()
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if req.EmployeeID != actor.UserID {
		return leave.LeaveRequestResponse{}, leave.ErrApplyOnBehalfForbidden
	}

	employee, err := s.userRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return leave.LeaveRequestResponse{}, user.ErrUserNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	name := strings.TrimSpace(req.EmployeeName)
	if name == "" {
		name = employee.Name
	}

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		ID:           newLeaveID(),
		EmployeeID:   employee.ID,
		EmployeeName: name,
		LeaveType:    leave.LeaveType(req.LeaveType),
		StartDate:    start,
		EndDate:      end,
		Remarks:      strings.TrimSpace(req.Remarks),
		Status:       leave.LeaveRequestStatusPending,
		SubmittedAt:  s.now().UTC(),
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	logger.From(ctx).Info("leave request submitted",
		"leave_id", created.ID,
		"employee_id", created.EmployeeID,
		"leave_type", created.LeaveType,
		"days", created.Days(),
	)

	return leave.ToLeaveRequestResponse(created), nil
}

// Decide implements leave.LeaveService.
func (s *LeaveServiceImpl) Decide(ctx context.Context, actor user.Principal, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	if !actor.Can(user.PermissionLeaveApprove) {
		return leave.LeaveRequestResponse{}, user.ErrAdminPrivilegeRequired
	}

	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	current, err := s.LeaveRequestRepository.GetByID(ctx, req.LeaveID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	outcome := leave.LeaveRequestStatus(req.Outcome)
	if !leave.CanTransition(current.Status, outcome) {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	decided := current
	decidedAt := s.now().UTC()
	decidedBy := actor.UserID
	decided.Status = outcome
	decided.DecidedAt = &decidedAt
	decided.DecidedBy = &decidedBy
	comment := ""
	if req.Comment != nil {
		comment = strings.TrimSpace(*req.Comment)
	}
	decided.AdminComment = &comment

	if err := s.LeaveRequestRepository.UpdateDecision(ctx, decided, current.Version); err != nil {
		if errors.Is(err, leave.ErrVersionConflict) {
			// Someone else got there first; report it as the state error when
			// the request has since left pending.
			if latest, getErr := s.LeaveRequestRepository.GetByID(ctx, req.LeaveID); getErr == nil && latest.Status.IsTerminal() {
				return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
			}
			return leave.LeaveRequestResponse{}, leave.ErrVersionConflict
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	decided.Version = current.Version + 1

	logger.From(ctx).Info("leave request decided",
		"leave_id", decided.ID,
		"employee_id", decided.EmployeeID,
		"outcome", decided.Status,
		"decided_by", decidedBy,
	)

	if s.publisher != nil {
		s.publisher.LeaveDecided(ctx, decided)
	}

	return leave.ToLeaveRequestResponse(decided), nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, actor user.Principal, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if !actor.CanAccessEmployee(request.EmployeeID, user.PermissionLeaveViewAll) {
		return leave.LeaveRequestResponse{}, leave.ErrUnauthorizedAccess
	}

	return leave.ToLeaveRequestResponse(request), nil
}

// ListFor implements leave.LeaveService. An empty employeeID means the caller.
func (s *LeaveServiceImpl) ListFor(ctx context.Context, actor user.Principal, employeeID string) (leave.ListLeaveRequestResponse, error) {
	if employeeID == "" {
		employeeID = actor.UserID
	}
	if !actor.CanAccessEmployee(employeeID, user.PermissionLeaveViewAll) {
		return leave.ListLeaveRequestResponse{}, leave.ErrUnauthorizedAccess
	}

	requests, err := s.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.NewListResponse(requests), nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context, actor user.Principal) (leave.ListLeaveRequestResponse, error) {
	if !actor.Can(user.PermissionLeaveViewAll) {
		return leave.ListLeaveRequestResponse{}, user.ErrAdminPrivilegeRequired
	}

	requests, err := s.LeaveRequestRepository.ListAll(ctx)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return leave.NewListResponse(requests), nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context, actor user.Principal) (leave.ListLeaveRequestResponse, error) {
	if !actor.Can(user.PermissionLeaveApprove) {
		return leave.ListLeaveRequestResponse{}, user.ErrAdminPrivilegeRequired
	}

	requests, err := s.LeaveRequestRepository.ListPending(ctx)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list pending leave requests: %w", err)
	}
	return leave.NewListResponse(requests), nil
}
