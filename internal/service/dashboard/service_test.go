package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/fixtures"
	"github.com/dayflow-hris/hrms-backend-go/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

func newService(t *testing.T) *DashboardServiceImpl {
	t.Helper()
	ctx := context.Background()
	stores := fixtures.Stores{
		Users:      memory.NewUserRepository(),
		Attendance: memory.NewAttendanceRepository(),
		Leaves:     memory.NewLeaveRequestRepository(),
		Payroll:    memory.NewPayrollRepository(),
	}
	ds := fixtures.Build("", today, 0, 1)
	ds.Attendance = []attendance.Record{
		{ID: "a", EmployeeID: "1", Date: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent},
		{ID: "b", EmployeeID: "1", Date: time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC), Status: attendance.StatusAbsent},
		{ID: "c", EmployeeID: "2", Date: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent},
		{ID: "d", EmployeeID: "4", Date: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), Status: attendance.StatusHalfDay},
	}
	require.NoError(t, fixtures.Seed(ctx, stores, ds))

	return NewDashboardService(stores.Users, stores.Attendance, stores.Leaves, stores.Payroll).(*DashboardServiceImpl)
}

func TestGetDashboard_Employee(t *testing.T) {
	svc := newService(t)

	got, err := svc.GetDashboard(context.Background(), user.Principal{UserID: "1", Role: user.RoleEmployee}, today)
	require.NoError(t, err)
	require.NotNil(t, got.Employee)
	assert.Nil(t, got.Admin)

	v := got.Employee
	assert.Equal(t, "DHRUV", v.Name)
	assert.Equal(t, 50, v.AttendanceRate)
	assert.Equal(t, 1, v.PresentDays)
	assert.Equal(t, 0, v.PendingLeaveCount)
	assert.Equal(t, 1, v.NoticeCount)
	assert.True(t, decimal.RequireFromString("93500").Equal(v.NetSalary))
}

func TestGetDashboard_Admin(t *testing.T) {
	svc := newService(t)

	got, err := svc.GetDashboard(context.Background(), user.Principal{UserID: "3", Role: user.RoleAdmin}, today)
	require.NoError(t, err)
	require.NotNil(t, got.Admin)

	v := got.Admin
	assert.Equal(t, 5, v.TotalEmployees)
	assert.Equal(t, 2, v.PendingLeaveCount)
	assert.Equal(t, 2, v.PresentToday)
	assert.Equal(t, "2026-01-20", v.Date)
	assert.True(t, decimal.RequireFromString("429000").Equal(v.TotalNetPayroll))
}

func TestGetDashboard_UnknownEmployee(t *testing.T) {
	svc := newService(t)

	_, err := svc.GetDashboard(context.Background(), user.Principal{UserID: "99", Role: user.RoleEmployee}, today)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
