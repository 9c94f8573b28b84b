package notification

import (
	"context"
	"fmt"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/notification"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/logger"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/sse"
)

const (
	EventLeaveDecided       = "leave_decided"
	EventLeavePendingDigest = string(notification.TypeLeavePendingDigest)

	digestOldestLimit = 5
)

// Service projects decision notices from the leave store and pushes live
// events over the SSE hub.
type Service struct {
	leaves leave.LeaveRequestRepository
	users  user.UserRepository
	hub    *sse.Hub
}

func NewNotificationService(leaves leave.LeaveRequestRepository, users user.UserRepository, hub *sse.Hub) *Service {
	return &Service{leaves: leaves, users: users, hub: hub}
}

// Notices implements notification.Service.
func (s *Service) Notices(ctx context.Context, actor user.Principal) (notification.NoticeListResponse, error) {
	requests, err := s.leaves.ListByEmployee(ctx, actor.UserID)
	if err != nil {
		return notification.NoticeListResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	notices := notification.Project(requests, actor.UserID, actor.Role)
	return notification.NoticeListResponse{Notices: notices, Total: len(notices)}, nil
}

// Subscribe implements notification.Service. The channel closes when ctx
// ends or cancel is called.
func (s *Service) Subscribe(ctx context.Context, actor user.Principal) (<-chan notification.SSEEvent, func()) {
	events, cancel := s.hub.Subscribe(actor.UserID)
	out := make(chan notification.SSEEvent)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				cancel()
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				select {
				case out <- notification.SSEEvent{Event: ev.Event, Data: ev.Data}:
				case <-ctx.Done():
					cancel()
					return
				}
			}
		}
	}()

	return out, cancel
}

// LeaveDecided implements leave.DecisionPublisher.
func (s *Service) LeaveDecided(ctx context.Context, request leave.LeaveRequest) {
	delivered := s.hub.Publish(request.EmployeeID, EventLeaveDecided, notification.NewNotice(request))
	logger.From(ctx).Debug("leave decision pushed",
		"leave_id", request.ID,
		"employee_id", request.EmployeeID,
		"streams", delivered,
	)
}

// PublishPendingDigest implements notification.Service.
func (s *Service) PublishPendingDigest(ctx context.Context) error {
	pending, err := s.leaves.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list pending leave requests: %w", err)
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	var admins []string
	for _, u := range users {
		if u.IsAdmin() {
			admins = append(admins, u.ID)
		}
	}

	digest := notification.PendingDigest{PendingCount: len(pending), OldestIDs: []string{}}
	for i := 0; i < len(pending) && i < digestOldestLimit; i++ {
		digest.OldestIDs = append(digest.OldestIDs, pending[i].ID)
	}

	delivered := s.hub.PublishToMany(admins, EventLeavePendingDigest, digest)
	logger.From(ctx).Info("pending leave digest published",
		"pending", digest.PendingCount,
		"admins", len(admins),
		"streams", delivered,
	)
	return nil
}
