package leave

import (
	"time"
)

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "paid"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypePaid, LeaveTypeSick, LeaveTypeUnpaid:
		return true
	}
	return false
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s LeaveRequestStatus) IsTerminal() bool {
	return s == LeaveRequestStatusApproved || s == LeaveRequestStatusRejected
}

// CanTransition is the whole state machine: pending -> approved and
// pending -> rejected are the only legal edges.
func CanTransition(from, to LeaveRequestStatus) bool {
	return from == LeaveRequestStatusPending && to.IsTerminal()
}

// LeaveRequest entity
type LeaveRequest struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	LeaveType    LeaveType

	StartDate time.Time // inclusive, UTC midnight
	EndDate   time.Time // inclusive, UTC midnight

	Remarks string

	Status       LeaveRequestStatus
	AdminComment *string // set exactly once, by the decision
	DecidedBy    *string
	DecidedAt    *time.Time

	SubmittedAt time.Time

	// Version is bumped on every write; decisions are conditional on it.
	Version int
}

// Covers reports whether day falls inside the inclusive [StartDate, EndDate] range.
func (l LeaveRequest) Covers(day time.Time) bool {
	return !day.Before(l.StartDate) && !day.After(l.EndDate)
}

// Days returns the inclusive number of calendar days requested.
func (l LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

// HasFeedback reports whether an admin decision left a non-empty comment.
func (l LeaveRequest) HasFeedback() bool {
	return l.AdminComment != nil && *l.AdminComment != ""
}
