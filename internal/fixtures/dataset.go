package fixtures

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// DefaultPassword signs in every seeded account.
const DefaultPassword = "password123"

// PayrollMonth labels the seeded payroll run.
const PayrollMonth = "January 2026"

func strPtr(s string) *string { return &s }

func date(s string) time.Time {
	d, ok := validator.IsValidDate(s)
	if !ok {
		panic("fixtures: bad date " + s)
	}
	return d
}

// Dataset is the demo organisation loaded into an empty store.
type Dataset struct {
	Users      []user.User
	Attendance []attendance.Record
	Leaves     []leave.LeaveRequest
	Payroll    []payroll.Record
}

// Users returns the five seeded accounts; passwordHash is set on each.
func Users(passwordHash string) []user.User {
	users := []user.User{
		{ID: "1", EmployeeID: "EMP001", Email: "dhruv@gmail.com", Role: user.RoleEmployee, Name: "DHRUV",
			Phone: "+1 234-567-8900", Address: "123 Main St, New York, NY 10001",
			Department: "Engineering", Position: "Senior Developer", JoinDate: date("2022-01-15"), Salary: 85000},
		{ID: "2", EmployeeID: "EMP002", Email: "jane.smith@dayflow.com", Role: user.RoleEmployee, Name: "Jane Smith",
			Phone: "+1 234-567-8901", Address: "456 Oak Ave, New York, NY 10002",
			Department: "Marketing", Position: "Marketing Manager", JoinDate: date("2021-06-20"), Salary: 75000},
		{ID: "3", EmployeeID: "ADMIN001", Email: "hr@gmail.com", Role: user.RoleAdmin, Name: "Sarah Johnson",
			Phone: "+1 234-567-8902", Address: "789 Pine Rd, New York, NY 10003",
			Department: "HR", Position: "HR Manager", JoinDate: date("2020-03-10"), Salary: 95000},
		{ID: "4", EmployeeID: "EMP003", Email: "mike.brown@dayflow.com", Role: user.RoleEmployee, Name: "Mike Brown",
			Phone: "+1 234-567-8903", Address: "321 Elm St, New York, NY 10004",
			Department: "Engineering", Position: "Junior Developer", JoinDate: date("2023-02-01"), Salary: 65000},
		{ID: "5", EmployeeID: "EMP004", Email: "emily.davis@dayflow.com", Role: user.RoleEmployee, Name: "Emily Davis",
			Phone: "+1 234-567-8904", Address: "654 Maple Dr, New York, NY 10005",
			Department: "Sales", Position: "Sales Executive", JoinDate: date("2022-08-15"), Salary: 70000},
	}
	for i := range users {
		users[i].PasswordHash = passwordHash
	}
	return users
}

// Leaves returns the seeded requests in insertion order.
func Leaves() []leave.LeaveRequest {
	submitted := func(s string) time.Time { return date(s).Add(9 * time.Hour) }
	decidedBy := "3"

	return []leave.LeaveRequest{
		{ID: "leave-1", EmployeeID: "1", EmployeeName: "DHRUV", LeaveType: leave.LeaveTypePaid,
			StartDate: date("2026-01-10"), EndDate: date("2026-01-12"), Remarks: "Family vacation",
			Status: leave.LeaveRequestStatusApproved, AdminComment: strPtr("Approved. Enjoy your vacation!"),
			DecidedBy: &decidedBy, SubmittedAt: submitted("2026-01-02")},
		{ID: "leave-2", EmployeeID: "2", EmployeeName: "Jane Smith", LeaveType: leave.LeaveTypeSick,
			StartDate: date("2026-01-05"), EndDate: date("2026-01-06"), Remarks: "Medical appointment",
			Status: leave.LeaveRequestStatusPending, SubmittedAt: submitted("2026-01-03")},
		{ID: "leave-3", EmployeeID: "4", EmployeeName: "Mike Brown", LeaveType: leave.LeaveTypePaid,
			StartDate: date("2026-01-15"), EndDate: date("2026-01-17"), Remarks: "Personal matters",
			Status: leave.LeaveRequestStatusPending, SubmittedAt: submitted("2026-01-02")},
		{ID: "leave-4", EmployeeID: "5", EmployeeName: "Emily Davis", LeaveType: leave.LeaveTypeUnpaid,
			StartDate: date("2026-01-08"), EndDate: date("2026-01-09"), Remarks: "Extended weekend",
			Status: leave.LeaveRequestStatusRejected, AdminComment: strPtr("Too many pending requests. Please reschedule."),
			DecidedBy: &decidedBy, SubmittedAt: submitted("2026-01-01")},
	}
}

// Attendance generates one record per user for each weekday in the days
// ending at today (inclusive). Status draws: >0.90 absent, >0.85 leave,
// >0.80 half-day, otherwise present.
func Attendance(users []user.User, today time.Time, days int, rng *rand.Rand) []attendance.Record {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	var records []attendance.Record

	for i := 0; i < days; i++ {
		d := today.AddDate(0, 0, -i)
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		key := d.Format(validator.DateLayout)

		for _, u := range users {
			rec := attendance.Record{
				ID:         fmt.Sprintf("att-%s-%s", u.ID, key),
				EmployeeID: u.ID,
				Date:       d,
			}
			switch r := rng.Float64(); {
			case r > 0.9:
				rec.Status = attendance.StatusAbsent
			case r > 0.85:
				rec.Status = attendance.StatusLeave
			case r > 0.80:
				rec.Status = attendance.StatusHalfDay
				rec.CheckIn, rec.CheckOut = strPtr("09:00 AM"), strPtr("01:00 PM")
			default:
				rec.Status = attendance.StatusPresent
				rec.CheckIn, rec.CheckOut = strPtr("09:00 AM"), strPtr("06:00 PM")
			}
			records = append(records, rec)
		}
	}
	return records
}

// Payroll builds one record per user from their salary.
func Payroll(users []user.User) []payroll.Record {
	records := make([]payroll.Record, 0, len(users))
	for _, u := range users {
		records = append(records, payroll.NewRecord("payroll-"+u.ID, u.ID, PayrollMonth, decimal.NewFromFloat(u.Salary)))
	}
	return records
}

// Build assembles the full dataset. The same seed and today always yield
// the same attendance.
func Build(passwordHash string, today time.Time, days int, seed int64) Dataset {
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	users := Users(passwordHash)
	return Dataset{
		Users:      users,
		Attendance: Attendance(users, today, days, rng),
		Leaves:     Leaves(),
		Payroll:    Payroll(users),
	}
}
