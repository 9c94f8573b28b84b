package leave

import (
	"context"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
)

type LeaveService interface {
	Apply(ctx context.Context, actor user.Principal, req ApplyLeaveRequest) (LeaveRequestResponse, error)
	Decide(ctx context.Context, actor user.Principal, req DecideLeaveRequest) (LeaveRequestResponse, error)
	Get(ctx context.Context, actor user.Principal, id string) (LeaveRequestResponse, error)
	ListFor(ctx context.Context, actor user.Principal, employeeID string) (ListLeaveRequestResponse, error)
	ListAll(ctx context.Context, actor user.Principal) (ListLeaveRequestResponse, error)
	ListPending(ctx context.Context, actor user.Principal) (ListLeaveRequestResponse, error)
}

// DecisionPublisher is told about every successful decision.
type DecisionPublisher interface {
	LeaveDecided(ctx context.Context, request LeaveRequest)
}
