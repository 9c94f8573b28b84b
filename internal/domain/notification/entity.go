package notification

import (
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeLeaveApproved      NotificationType = "leave_approved"
	TypeLeaveRejected      NotificationType = "leave_rejected"
	TypeLeavePendingDigest NotificationType = "leave_pending_digest"
)

// Notice is a derived "your leave request was decided" entry. It is never
// stored; every view recomputes it from the leave set.
type Notice struct {
	LeaveID      string                   `json:"leave_id"`
	Type         NotificationType         `json:"type"`
	LeaveType    leave.LeaveType          `json:"leave_type"`
	StartDate    string                   `json:"start_date"`
	EndDate      string                   `json:"end_date"`
	Status       leave.LeaveRequestStatus `json:"status"`
	AdminComment string                   `json:"admin_comment"`
	Message      string                   `json:"message"`
	DecidedAt    *time.Time               `json:"decided_at,omitempty"`
}
