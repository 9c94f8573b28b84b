package leave

import (
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	LeaveType    string `json:"leave_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Remarks      string `json:"remarks"`
}

// Validate checks the request shape and returns the parsed date range.
func (r *ApplyLeaveRequest) Validate() (start, end time.Time, err error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}

	if validator.IsEmpty(r.LeaveType) {
		errs.Add("leave_type", "leave_type is required")
	} else if !LeaveType(r.LeaveType).IsValid() {
		errs.Add("leave_type", "leave_type must be one of paid, sick, unpaid")
	}

	startOK, endOK := false, false
	if validator.IsEmpty(r.StartDate) {
		errs.Add("start_date", "start_date is required")
	} else if start, startOK = validator.IsValidDate(r.StartDate); !startOK {
		errs.Add("start_date", "start_date must be a date in YYYY-MM-DD format")
	}

	if validator.IsEmpty(r.EndDate) {
		errs.Add("end_date", "end_date is required")
	} else if end, endOK = validator.IsValidDate(r.EndDate); !endOK {
		errs.Add("end_date", "end_date must be a date in YYYY-MM-DD format")
	}

	if startOK && endOK && start.After(end) {
		errs.Add("end_date", "end_date must not be before start_date")
	}

	if validator.IsEmpty(r.Remarks) {
		errs.Add("remarks", "remarks is required")
	} else if len(r.Remarks) > 1000 {
		errs.Add("remarks", "remarks must not exceed 1000 characters")
	}

	return start, end, errs.Err()
}

type DecideLeaveRequest struct {
	LeaveID string  `json:"-"`
	Outcome string  `json:"outcome"`
	Comment *string `json:"comment,omitempty"`
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveID) {
		errs.Add("leave_id", "leave_id is required")
	}

	if validator.IsEmpty(r.Outcome) {
		errs.Add("outcome", "outcome is required")
	} else if !LeaveRequestStatus(r.Outcome).IsTerminal() {
		errs.Add("outcome", "outcome must be approved or rejected")
	}

	if r.Comment != nil && len(*r.Comment) > 1000 {
		errs.Add("comment", "comment must not exceed 1000 characters")
	}

	return errs.Err()
}

type LeaveRequestResponse struct {
	ID           string     `json:"id"`
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	LeaveType    string     `json:"leave_type"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	TotalDays    int        `json:"total_days"`
	Remarks      string     `json:"remarks"`
	Status       string     `json:"status"`
	AdminComment *string    `json:"admin_comment,omitempty"`
	DecidedBy    *string    `json:"decided_by,omitempty"`
	DecidedAt    *time.Time `json:"decided_at,omitempty"`
	SubmittedAt  time.Time  `json:"submitted_at"`
}

func ToLeaveRequestResponse(l LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		LeaveType:    string(l.LeaveType),
		StartDate:    l.StartDate.Format(validator.DateLayout),
		EndDate:      l.EndDate.Format(validator.DateLayout),
		TotalDays:    l.Days(),
		Remarks:      l.Remarks,
		Status:       string(l.Status),
		AdminComment: l.AdminComment,
		DecidedBy:    l.DecidedBy,
		DecidedAt:    l.DecidedAt,
		SubmittedAt:  l.SubmittedAt,
	}
}

type ListLeaveRequestResponse struct {
	TotalCount    int                    `json:"total_count"`
	PendingCount  int                    `json:"pending_count"`
	ApprovedCount int                    `json:"approved_count"`
	RejectedCount int                    `json:"rejected_count"`
	Requests      []LeaveRequestResponse `json:"requests"`
}

// NewListResponse keeps the given order and tallies statuses.
func NewListResponse(requests []LeaveRequest) ListLeaveRequestResponse {
	resp := ListLeaveRequestResponse{
		TotalCount: len(requests),
		Requests:   make([]LeaveRequestResponse, 0, len(requests)),
	}
	for _, r := range requests {
		switch r.Status {
		case LeaveRequestStatusPending:
			resp.PendingCount++
		case LeaveRequestStatusApproved:
			resp.ApprovedCount++
		case LeaveRequestStatusRejected:
			resp.RejectedCount++
		}
		resp.Requests = append(resp.Requests, ToLeaveRequestResponse(r))
	}
	return resp
}
