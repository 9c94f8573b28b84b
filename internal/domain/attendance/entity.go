package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
	StatusLeave   Status = "leave"
)

// IsValid reports whether s is a known attendance status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave:
		return true
	}
	return false
}

// Record is one day's presence for one employee. At most one record exists
// per (EmployeeID, Date).
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time // calendar day, UTC midnight
	Status     Status
	CheckIn    *string // e.g. "09:00 AM"
	CheckOut   *string
}

// DateKey returns the record's calendar day as YYYY-MM-DD.
func (r Record) DateKey() string {
	return r.Date.Format("2006-01-02")
}
