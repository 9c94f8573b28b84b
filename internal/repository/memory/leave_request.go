package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
)

// leaveRequestRepositoryImpl keeps requests in insertion order; list views
// derive their ordering from it.
type leaveRequestRepositoryImpl struct {
	mu       sync.RWMutex
	requests []leave.LeaveRequest
	index    map[string]int
}

func NewLeaveRequestRepository() leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{index: make(map[string]int)}
}

// Create implements leave.LeaveRequestRepository. The stored version starts at 1.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[request.ID]; exists {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestExists
	}
	request.Version = 1
	r.index[request.ID] = len(r.requests)
	r.requests = append(r.requests, request)
	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return r.requests[i], nil
}

// ListByEmployee implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []leave.LeaveRequest{}
	for i := len(r.requests) - 1; i >= 0; i-- {
		if r.requests[i].EmployeeID == employeeID {
			out = append(out, r.requests[i])
		}
	}
	return out, nil
}

// ListAll implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]leave.LeaveRequest, 0, len(r.requests))
	for i := len(r.requests) - 1; i >= 0; i-- {
		out = append(out, r.requests[i])
	}
	return out, nil
}

// ListPending implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListPending(ctx context.Context) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []leave.LeaveRequest{}
	for _, req := range r.requests {
		if req.Status == leave.LeaveRequestStatusPending {
			out = append(out, req)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	return out, nil
}

// UpdateDecision implements leave.LeaveRequestRepository. The check and the
// write happen under one lock.
func (r *leaveRequestRepositoryImpl) UpdateDecision(ctx context.Context, request leave.LeaveRequest, expectedVersion int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[request.ID]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	stored := r.requests[i]
	if stored.Version != expectedVersion || stored.Status != leave.LeaveRequestStatusPending {
		return leave.ErrVersionConflict
	}

	stored.Status = request.Status
	stored.AdminComment = request.AdminComment
	stored.DecidedBy = request.DecidedBy
	stored.DecidedAt = request.DecidedAt
	stored.Version = expectedVersion + 1
	r.requests[i] = stored
	return nil
}
