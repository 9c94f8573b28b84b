package dashboard

import "github.com/shopspring/decimal"

// EmployeeDashboardResponse is the self-service landing view.
type EmployeeDashboardResponse struct {
	EmployeeID        string          `json:"employee_id"`
	Name              string          `json:"name"`
	AttendanceRate    int             `json:"attendance_rate"`
	PresentDays       int             `json:"present_days"`
	PendingLeaveCount int             `json:"pending_leave_count"`
	NoticeCount       int             `json:"notice_count"`
	NetSalary         decimal.Decimal `json:"net_salary"`
}

// AdminDashboardResponse is the HR console landing view.
type AdminDashboardResponse struct {
	TotalEmployees    int             `json:"total_employees"`
	PendingLeaveCount int             `json:"pending_leave_count"`
	PresentToday      int             `json:"present_today"`
	TotalNetPayroll   decimal.Decimal `json:"total_net_payroll"`
	Date              string          `json:"date"`
}

// DashboardResponse carries exactly one of the two views, chosen by role.
type DashboardResponse struct {
	Role     string                     `json:"role"`
	Employee *EmployeeDashboardResponse `json:"employee,omitempty"`
	Admin    *AdminDashboardResponse    `json:"admin,omitempty"`
}
