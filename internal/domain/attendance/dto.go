package attendance

import (
	"math"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/validator"
)

type ListAttendanceRequest struct {
	EmployeeID string
	From       string
	To         string
}

// Validate checks the optional date bounds and returns them parsed.
func (r *ListAttendanceRequest) Validate() (from, to time.Time, err error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs.Add("employee_id", "employee_id is required")
	}

	if r.From != "" {
		d, ok := validator.IsValidDate(r.From)
		if !ok {
			errs.Add("from", "from must be a date in YYYY-MM-DD format")
		}
		from = d
	}
	if r.To != "" {
		d, ok := validator.IsValidDate(r.To)
		if !ok {
			errs.Add("to", "to must be a date in YYYY-MM-DD format")
		}
		to = d
	}
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		errs.Add("from", "from must not be after to")
	}

	return from, to, errs.Err()
}

type RecordResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
}

func ToRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		Date:       r.DateKey(),
		Status:     string(r.Status),
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
	}
}

type SummaryResponse struct {
	EmployeeID     string `json:"employee_id"`
	PresentDays    int    `json:"present_days"`
	AbsentDays     int    `json:"absent_days"`
	HalfDays       int    `json:"half_days"`
	LeaveDays      int    `json:"leave_days"`
	TotalDays      int    `json:"total_days"`
	AttendanceRate int    `json:"attendance_rate"`
}

// Summarize counts statuses; AttendanceRate is present/total as a rounded
// percentage, 0 when there are no records.
func Summarize(employeeID string, records []Record) SummaryResponse {
	s := SummaryResponse{EmployeeID: employeeID, TotalDays: len(records)}
	for _, r := range records {
		switch r.Status {
		case StatusPresent:
			s.PresentDays++
		case StatusAbsent:
			s.AbsentDays++
		case StatusHalfDay:
			s.HalfDays++
		case StatusLeave:
			s.LeaveDays++
		}
	}
	if s.TotalDays > 0 {
		s.AttendanceRate = int(math.Round(float64(s.PresentDays) / float64(s.TotalDays) * 100))
	}
	return s
}
