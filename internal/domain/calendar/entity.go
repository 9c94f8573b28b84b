package calendar

import (
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
)

// AttendanceBadge is the attendance half of a day cell.
type AttendanceBadge struct {
	RecordID string            `json:"record_id"`
	Status   attendance.Status `json:"status"`
	CheckIn  *string           `json:"check_in,omitempty"`
	CheckOut *string           `json:"check_out,omitempty"`
}

// LeaveBadge is the leave half of a day cell.
type LeaveBadge struct {
	LeaveID   string                   `json:"leave_id"`
	LeaveType leave.LeaveType          `json:"leave_type"`
	Status    leave.LeaveRequestStatus `json:"status"`
}

// Day is one non-padding cell of the month grid. Both badges may be set at
// once; conflicting data is surfaced, not reconciled.
type Day struct {
	Day        int              `json:"day"`
	Date       string           `json:"date"`
	Attendance *AttendanceBadge `json:"attendance,omitempty"`
	Leave      *LeaveBadge      `json:"leave,omitempty"`
}

// MonthView is the rendered month for one employee.
type MonthView struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	// LeadingBlanks is the number of empty cells before day 1 in a
	// Sunday-first week grid.
	LeadingBlanks int   `json:"leading_blanks"`
	DaysInMonth   int   `json:"days_in_month"`
	Days          []Day `json:"days"`
}
