package notification

import (
	"context"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
)

// Service defines the notification service interface
type Service interface {
	// Notices recomputes the caller's decision notices.
	Notices(ctx context.Context, actor user.Principal) (NoticeListResponse, error)

	// Subscribe opens a live event channel for the caller.
	Subscribe(ctx context.Context, actor user.Principal) (<-chan SSEEvent, func())

	// PublishPendingDigest pushes the pending-queue digest to every admin.
	PublishPendingDigest(ctx context.Context) error
}
