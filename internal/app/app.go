// Package app wires repositories, services and HTTP handlers together.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/config"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hrms-backend-go/internal/fixtures"
	appHTTP "github.com/dayflow-hris/hrms-backend-go/internal/handler/http"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/sse"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/storage"
	"github.com/dayflow-hris/hrms-backend-go/internal/repository/memory"
	"github.com/dayflow-hris/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dayflow-hris/hrms-backend-go/internal/service/attendance"
	serviceAuth "github.com/dayflow-hris/hrms-backend-go/internal/service/auth"
	calendarService "github.com/dayflow-hris/hrms-backend-go/internal/service/calendar"
	dashboardService "github.com/dayflow-hris/hrms-backend-go/internal/service/dashboard"
	"github.com/dayflow-hris/hrms-backend-go/internal/service/file"
	leaveService "github.com/dayflow-hris/hrms-backend-go/internal/service/leave"
	notificationService "github.com/dayflow-hris/hrms-backend-go/internal/service/notification"
	payrollService "github.com/dayflow-hris/hrms-backend-go/internal/service/payroll"
	userService "github.com/dayflow-hris/hrms-backend-go/internal/service/user"
	"golang.org/x/crypto/bcrypt"
)

// Stores is one backing store: the repositories plus the transactor that
// groups their writes.
type Stores struct {
	fixtures.Stores
	Tx database.Transactor
}

func MemoryStores() Stores {
	return Stores{
		Stores: fixtures.Stores{
			Users:      memory.NewUserRepository(),
			Attendance: memory.NewAttendanceRepository(),
			Leaves:     memory.NewLeaveRequestRepository(),
			Payroll:    memory.NewPayrollRepository(),
		},
		Tx: memory.NewTransactor(),
	}
}

func PostgresStores(db *database.DB) Stores {
	return Stores{
		Stores: fixtures.Stores{
			Users:      postgresql.NewUserRepository(db),
			Attendance: postgresql.NewAttendanceRepository(db),
			Leaves:     postgresql.NewLeaveRequestRepository(db),
			Payroll:    postgresql.NewPayrollRepository(db),
		},
		Tx: postgresql.NewTransactor(db),
	}
}

// SeedDemo loads the demo organisation into an empty store in one
// transaction. bcryptCost is bcrypt.DefaultCost outside tests.
func SeedDemo(ctx context.Context, s Stores, seed config.SeedConfig, today time.Time, bcryptCost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(fixtures.DefaultPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	ds := fixtures.Build(string(hash), today, seed.AttendanceDays, seed.RandomSeed)
	return s.Tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return fixtures.Seed(ctx, s.Stores, ds)
	})
}

// App is the assembled application.
type App struct {
	Handlers      appHTTP.Handlers
	Notifications *notificationService.Service
	Payroll       payroll.PayrollService
}

func New(s Stores, jwtService jwt.Service, fileStorage storage.FileStorage, hub *sse.Hub) *App {
	notifSvc := notificationService.NewNotificationService(s.Leaves, s.Users, hub)
	fileSvc := file.NewFileService(fileStorage)
	userSvc := userService.NewUserService(s.Users, fileSvc)
	authSvc := serviceAuth.NewAuthService(s.Users, jwtService, userSvc)
	leaveSvc := leaveService.NewLeaveService(s.Leaves, s.Users, notifSvc)
	attendanceSvc := attendanceService.NewAttendanceService(s.Attendance)
	calendarSvc := calendarService.NewCalendarService(s.Attendance, s.Leaves)
	payrollSvc := payrollService.NewPayrollService(s.Tx, s.Payroll, s.Users)
	dashboardSvc := dashboardService.NewDashboardService(s.Users, s.Attendance, s.Leaves, s.Payroll)

	return &App{
		Handlers: appHTTP.Handlers{
			Auth:         appHTTP.NewAuthHandler(jwtService, authSvc, userSvc),
			User:         appHTTP.NewUserHandler(userSvc),
			Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc, calendarSvc),
			Leave:        appHTTP.NewLeaveHandler(leaveSvc),
			Notification: appHTTP.NewNotificationHandler(notifSvc),
			Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
			Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		},
		Notifications: notifSvc,
		Payroll:       payrollSvc,
	}
}
