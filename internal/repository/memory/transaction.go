package memory

import (
	"context"
	"sync"

	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/database"
)

// transactor serialises multi-repository writes. The in-memory stores have
// no rollback, so callers must check preconditions before the first write.
type transactor struct {
	mu sync.Mutex
}

func NewTransactor() database.Transactor {
	return &transactor{}
}

func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx)
}
