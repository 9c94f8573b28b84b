package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending(id, employeeID string, submitted time.Time) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:          id,
		EmployeeID:  employeeID,
		LeaveType:   leave.LeaveTypePaid,
		StartDate:   time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		Status:      leave.LeaveRequestStatusPending,
		SubmittedAt: submitted,
	}
}

func TestLeaveRequestRepository_Ordering(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRequestRepository()
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)

	// Inserted out of submission order on purpose.
	for _, l := range []leave.LeaveRequest{
		newPending("a", "1", base.Add(2*time.Hour)),
		newPending("b", "2", base),
		newPending("c", "1", base.Add(time.Hour)),
	} {
		_, err := repo.Create(ctx, l)
		require.NoError(t, err)
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, ids(all))

	mine, err := repo.ListByEmployee(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, ids(mine))

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, ids(pending))
}

func TestLeaveRequestRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRequestRepository()

	created, err := repo.Create(ctx, newPending("a", "1", time.Now()))
	require.NoError(t, err)
	assert.Equal(t, 1, created.Version)

	_, err = repo.Create(ctx, newPending("a", "1", time.Now()))
	assert.ErrorIs(t, err, leave.ErrLeaveRequestExists)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveRequestRepository_UpdateDecisionIsConditional(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRequestRepository()
	_, err := repo.Create(ctx, newPending("a", "1", time.Now()))
	require.NoError(t, err)

	decided := newPending("a", "1", time.Now())
	decided.Status = leave.LeaveRequestStatusApproved

	assert.ErrorIs(t, repo.UpdateDecision(ctx, decided, 7), leave.ErrVersionConflict)
	require.NoError(t, repo.UpdateDecision(ctx, decided, 1))

	stored, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, stored.Status)
	assert.Equal(t, 2, stored.Version)

	// Already decided: even the current version cannot flip it again.
	decided.Status = leave.LeaveRequestStatusRejected
	assert.ErrorIs(t, repo.UpdateDecision(ctx, decided, 2), leave.ErrVersionConflict)

	decided.ID = "missing"
	assert.ErrorIs(t, repo.UpdateDecision(ctx, decided, 1), leave.ErrLeaveRequestNotFound)
}

func TestLeaveRequestRepository_ConcurrentDecisionsHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRequestRepository()
	_, err := repo.Create(ctx, newPending("a", "1", time.Now()))
	require.NoError(t, err)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d := newPending("a", "1", time.Now())
			d.Status = leave.LeaveRequestStatusApproved
			if i%2 == 0 {
				d.Status = leave.LeaveRequestStatusRejected
			}
			if repo.UpdateDecision(ctx, d, 1) == nil {
				wins.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func ids(requests []leave.LeaveRequest) []string {
	out := make([]string, 0, len(requests))
	for _, r := range requests {
		out = append(out, r.ID)
	}
	return out
}
