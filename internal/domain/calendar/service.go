package calendar

import (
	"context"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
)

type CalendarService interface {
	Month(ctx context.Context, actor user.Principal, employeeID string, year, month int) (MonthView, error)
}
