package leave

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/fixtures"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/dayflow-hris/hrms-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	employee1 = user.Principal{UserID: "1", Role: user.RoleEmployee}
	employee4 = user.Principal{UserID: "4", Role: user.RoleEmployee}
	admin     = user.Principal{UserID: "3", Role: user.RoleAdmin}
)

type recordingPublisher struct {
	mu      sync.Mutex
	decided []leave.LeaveRequest
}

func (p *recordingPublisher) LeaveDecided(ctx context.Context, request leave.LeaveRequest) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.decided = append(p.decided, request)
}

func newTestService(t *testing.T) (leave.LeaveService, leave.LeaveRequestRepository, *recordingPublisher) {
	t.Helper()
	users := memory.NewUserRepository()
	for _, u := range fixtures.Users("") {
		_, err := users.Create(context.Background(), u)
		require.NoError(t, err)
	}
	repo := memory.NewLeaveRequestRepository()
	pub := &recordingPublisher{}
	return NewLeaveService(repo, users, pub), repo, pub
}

func tripRequest() leave.ApplyLeaveRequest {
	return leave.ApplyLeaveRequest{
		EmployeeID: "1",
		LeaveType:  "paid",
		StartDate:  "2026-01-10",
		EndDate:    "2026-01-12",
		Remarks:    "trip",
	}
}

// A new request starts pending and joins the admin queue.
func TestApply_CreatesPendingRequestInQueue(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	before := time.Now().UTC()

	created, err := svc.Apply(ctx, employee1, tripRequest())
	require.NoError(t, err)

	assert.Equal(t, string(leave.LeaveRequestStatusPending), created.Status)
	assert.Equal(t, "DHRUV", created.EmployeeName)
	assert.Equal(t, 3, created.TotalDays)
	assert.Contains(t, created.ID, "leave-")
	assert.False(t, created.SubmittedAt.Before(before))
	assert.Nil(t, created.AdminComment)

	pending, err := svc.ListPending(ctx, admin)
	require.NoError(t, err)
	require.Equal(t, 1, pending.TotalCount)
	assert.Equal(t, created.ID, pending.Requests[0].ID)
}

// A decided request cannot be decided again.
func TestDecide_SecondDecisionFailsAndLeavesRecordUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, _, pub := newTestService(t)

	created, err := svc.Apply(ctx, employee1, tripRequest())
	require.NoError(t, err)

	comment := "Enjoy!"
	approved, err := svc.Decide(ctx, admin, leave.DecideLeaveRequest{LeaveID: created.ID, Outcome: "approved", Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)
	require.NotNil(t, approved.AdminComment)
	assert.Equal(t, "Enjoy!", *approved.AdminComment)
	require.NotNil(t, approved.DecidedBy)
	assert.Equal(t, "3", *approved.DecidedBy)
	assert.NotNil(t, approved.DecidedAt)

	_, err = svc.Decide(ctx, admin, leave.DecideLeaveRequest{LeaveID: created.ID, Outcome: "rejected"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	got, err := svc.Get(ctx, employee1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", got.Status)
	require.NotNil(t, got.AdminComment)
	assert.Equal(t, "Enjoy!", *got.AdminComment)

	require.Len(t, pub.decided, 1)
	assert.Equal(t, created.ID, pub.decided[0].ID)

	pending, err := svc.ListPending(ctx, admin)
	require.NoError(t, err)
	assert.Zero(t, pending.TotalCount)
}

func TestApply_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	cases := map[string]func(r *leave.ApplyLeaveRequest){
		"start_date": func(r *leave.ApplyLeaveRequest) { r.StartDate = "" },
		"end_date":   func(r *leave.ApplyLeaveRequest) { r.EndDate = "2026-01-09" },
		"leave_type": func(r *leave.ApplyLeaveRequest) { r.LeaveType = "holiday" },
		"remarks":    func(r *leave.ApplyLeaveRequest) { r.Remarks = "   " },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			req := tripRequest()
			mutate(&req)

			_, err := svc.Apply(ctx, employee1, req)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), field)
		})
	}

	req := tripRequest()
	req.StartDate = "10/01/2026"
	_, err := svc.Apply(ctx, employee1, req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "start_date")
}

func TestApply_SingleDayAllowed(t *testing.T) {
	svc, _, _ := newTestService(t)
	req := tripRequest()
	req.EndDate = req.StartDate

	created, err := svc.Apply(context.Background(), employee1, req)
	require.NoError(t, err)
	assert.Equal(t, 1, created.TotalDays)
}

func TestApply_OnBehalfOfAnotherEmployeeForbidden(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	_, err := svc.Apply(ctx, admin, tripRequest())
	assert.ErrorIs(t, err, leave.ErrApplyOnBehalfForbidden)

	_, err = svc.Apply(ctx, employee4, tripRequest())
	assert.ErrorIs(t, err, leave.ErrApplyOnBehalfForbidden)

	req := tripRequest()
	req.EmployeeID = ""
	created, err := svc.Apply(ctx, employee4, req)
	require.NoError(t, err)
	assert.Equal(t, "4", created.EmployeeID)
	assert.Equal(t, "Mike Brown", created.EmployeeName)
}

func TestDecide_Failures(t *testing.T) {
	ctx := context.Background()
	svc, repo, pub := newTestService(t)
	created, err := svc.Apply(ctx, employee1, tripRequest())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, employee1, leave.DecideLeaveRequest{LeaveID: created.ID, Outcome: "approved"})
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	_, err = svc.Decide(ctx, admin, leave.DecideLeaveRequest{LeaveID: "leave-missing", Outcome: "approved"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)

	_, err = svc.Decide(ctx, admin, leave.DecideLeaveRequest{LeaveID: created.ID, Outcome: "pending"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusPending, stored.Status)
	assert.Equal(t, 1, stored.Version)
	assert.Empty(t, pub.decided)
}

func TestDecide_WithoutCommentProducesNoFeedback(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)
	created, err := svc.Apply(ctx, employee1, tripRequest())
	require.NoError(t, err)

	rejected, err := svc.Decide(ctx, admin, leave.DecideLeaveRequest{LeaveID: created.ID, Outcome: "rejected"})
	require.NoError(t, err)
	require.NotNil(t, rejected.AdminComment)
	assert.Equal(t, "", *rejected.AdminComment)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.AdminComment)
	assert.Equal(t, "", *stored.AdminComment)
	assert.False(t, stored.HasFeedback())
	assert.Equal(t, 2, stored.Version)
}

// staleRepository hands out a pending snapshot even after another writer
// has decided the request.
type staleRepository struct {
	leave.LeaveRequestRepository
	snapshot leave.LeaveRequest
	calls    int
}

func (r *staleRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.calls++
	if r.calls == 1 {
		return r.snapshot, nil
	}
	return r.LeaveRequestRepository.GetByID(ctx, id)
}

func TestDecide_LostRaceReportsAlreadyProcessed(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService(t)
	created, err := svc.Apply(ctx, employee1, tripRequest())
	require.NoError(t, err)

	snapshot, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	_, err = svc.Decide(ctx, admin, leave.DecideLeaveRequest{LeaveID: created.ID, Outcome: "approved"})
	require.NoError(t, err)

	users := memory.NewUserRepository()
	racing := NewLeaveService(&staleRepository{LeaveRequestRepository: repo, snapshot: snapshot}, users, nil)
	_, err = racing.Decide(ctx, admin, leave.DecideLeaveRequest{LeaveID: created.ID, Outcome: "rejected"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, stored.Status)
}

func TestConcurrentDecisions_ExactlyOneSucceeds(t *testing.T) {
	ctx := context.Background()
	svc, _, pub := newTestService(t)
	created, err := svc.Apply(ctx, employee1, tripRequest())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Decide(ctx, admin, leave.DecideLeaveRequest{LeaveID: created.ID, Outcome: "approved"})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	ok := 0
	for err := range results {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	}
	assert.Equal(t, 1, ok)
	assert.Len(t, pub.decided, 1)
}

func TestQueries_RespectCapabilities(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	first, err := svc.Apply(ctx, employee1, tripRequest())
	require.NoError(t, err)
	req := tripRequest()
	req.StartDate, req.EndDate = "2026-02-01", "2026-02-02"
	second, err := svc.Apply(ctx, employee1, req)
	require.NoError(t, err)

	mine, err := svc.ListFor(ctx, employee1, "")
	require.NoError(t, err)
	require.Equal(t, 2, mine.TotalCount)
	assert.Equal(t, second.ID, mine.Requests[0].ID)
	assert.Equal(t, first.ID, mine.Requests[1].ID)

	_, err = svc.ListFor(ctx, employee4, "1")
	assert.ErrorIs(t, err, leave.ErrUnauthorizedAccess)

	_, err = svc.Get(ctx, employee4, first.ID)
	assert.ErrorIs(t, err, leave.ErrUnauthorizedAccess)

	_, err = svc.ListAll(ctx, employee1)
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	_, err = svc.ListPending(ctx, employee1)
	assert.ErrorIs(t, err, user.ErrAdminPrivilegeRequired)

	all, err := svc.ListAll(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, 2, all.PendingCount)

	forAdmin, err := svc.ListFor(ctx, admin, "1")
	require.NoError(t, err)
	assert.Equal(t, 2, forAdmin.TotalCount)
}
