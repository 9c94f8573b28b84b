package calendar

import (
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/validator"
)

// DaysIn returns the number of days in month (1-12) of year, as day 0 of the
// following month in the proleptic Gregorian calendar.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Aggregate overlays attendance and leave ranges for employeeID on the given
// month. Records belonging to other employees are ignored. Attendance is
// matched by exact day; leave by inclusive range containment, first match in
// the order given.
func Aggregate(year, month int, employeeID string, records []attendance.Record, leaves []leave.LeaveRequest) (MonthView, error) {
	var errs validator.ValidationErrors
	if year < 1 || year > 9999 {
		errs.Add("year", "year must be between 1 and 9999")
	}
	if month < 1 || month > 12 {
		errs.Add("month", "month must be between 1 and 12")
	}
	if validator.IsEmpty(employeeID) {
		errs.Add("employee_id", "employee_id is required")
	}
	if err := errs.Err(); err != nil {
		return MonthView{}, err
	}

	byDate := make(map[string]attendance.Record)
	for _, r := range records {
		if r.EmployeeID != employeeID {
			continue
		}
		if _, seen := byDate[r.DateKey()]; !seen {
			byDate[r.DateKey()] = r
		}
	}

	own := make([]leave.LeaveRequest, 0, len(leaves))
	for _, l := range leaves {
		if l.EmployeeID == employeeID {
			own = append(own, l)
		}
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := DaysIn(year, month)

	view := MonthView{
		EmployeeID:    employeeID,
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		DaysInMonth:   daysInMonth,
		Days:          make([]Day, 0, daysInMonth),
	}

	for d := 1; d <= daysInMonth; d++ {
		date := first.AddDate(0, 0, d-1)
		key := date.Format(validator.DateLayout)
		cell := Day{Day: d, Date: key}

		if r, ok := byDate[key]; ok {
			cell.Attendance = &AttendanceBadge{
				RecordID: r.ID,
				Status:   r.Status,
				CheckIn:  r.CheckIn,
				CheckOut: r.CheckOut,
			}
		}

		for _, l := range own {
			if l.Covers(date) {
				cell.Leave = &LeaveBadge{LeaveID: l.ID, LeaveType: l.LeaveType, Status: l.Status}
				break
			}
		}

		view.Days = append(view.Days, cell)
	}

	return view, nil
}
