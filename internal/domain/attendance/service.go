package attendance

import (
	"context"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
)

type AttendanceService interface {
	List(ctx context.Context, actor user.Principal, req ListAttendanceRequest) ([]RecordResponse, error)
	Summary(ctx context.Context, actor user.Principal, employeeID string) (SummaryResponse, error)
	PresentOn(ctx context.Context, date time.Time) (int, error)
}
