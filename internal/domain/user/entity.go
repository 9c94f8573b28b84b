package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee" // Self-service only
	RoleAdmin    Role = "admin"    // HR console: approvals, payroll, all employees
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

type User struct {
	ID           string
	EmployeeID   string
	Email        string
	PasswordHash string
	Role         Role
	Name         string
	Department   string
	Position     string
	Phone        string
	Address      string
	JoinDate     time.Time
	Salary       float64
	Photo        *string
}

// IsAdmin checks if user belongs to the HR console
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Principal is the signed-in caller as seen by services.
type Principal struct {
	UserID string
	Role   Role
}

// Can checks the principal's role against the capability table.
func (p Principal) Can(permission Permission) bool {
	return HasPermission(p.Role, permission)
}

// CanAccessEmployee reports whether the principal may read data owned by
// employeeID, given the permission that grants access to everyone's data.
func (p Principal) CanAccessEmployee(employeeID string, viewAll Permission) bool {
	return p.UserID == employeeID || p.Can(viewAll)
}
