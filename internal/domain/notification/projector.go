package notification

import (
	"fmt"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/validator"
)

// Project derives the decision notices visible to employeeID. Only employees
// see notices; a request qualifies when it is theirs, decided, and carries a
// non-empty admin comment. Input order is preserved.
func Project(leaves []leave.LeaveRequest, employeeID string, role user.Role) []Notice {
	notices := []Notice{}
	if role != user.RoleEmployee {
		return notices
	}

	for _, l := range leaves {
		if l.EmployeeID != employeeID || !l.Status.IsTerminal() || !l.HasFeedback() {
			continue
		}
		notices = append(notices, NewNotice(l))
	}
	return notices
}

// NewNotice builds the notice for a decided request.
func NewNotice(l leave.LeaveRequest) Notice {
	n := Notice{
		LeaveID:   l.ID,
		Type:      TypeLeaveRejected,
		LeaveType: l.LeaveType,
		StartDate: l.StartDate.Format(validator.DateLayout),
		EndDate:   l.EndDate.Format(validator.DateLayout),
		Status:    l.Status,
		DecidedAt: l.DecidedAt,
	}
	if l.Status == leave.LeaveRequestStatusApproved {
		n.Type = TypeLeaveApproved
	}
	if l.AdminComment != nil {
		n.AdminComment = *l.AdminComment
	}
	n.Message = fmt.Sprintf("Your %s leave request for %s - %s has been %s.", l.LeaveType, n.StartDate, n.EndDate, l.Status)
	return n
}
