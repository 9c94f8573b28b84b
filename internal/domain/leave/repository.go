package leave

import (
	"context"
)

// LeaveRequestRepository - the authoritative set of leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// ListByEmployee and ListAll return most-recent-first (reverse insertion order).
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)
	// ListPending returns pending requests oldest submission first.
	ListPending(ctx context.Context) ([]LeaveRequest, error)
	// UpdateDecision stores a decided request only if the stored row is still
	// pending at expectedVersion; otherwise it returns ErrVersionConflict.
	UpdateDecision(ctx context.Context, request LeaveRequest, expectedVersion int) error
}
