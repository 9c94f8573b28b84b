package dashboard

import (
	"context"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
)

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetDashboard returns the view matching the caller's role, computed as of today.
	GetDashboard(ctx context.Context, actor user.Principal, today time.Time) (DashboardResponse, error)
}
