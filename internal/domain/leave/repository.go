package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter RequestFilter) ([]Request, int64, error)

	// ListWorkersOnApprovedLeave returns the IDs of workers with an
	// approved leave whose range covers date. Consulted by the roster
	// board before assigning.
	ListWorkersOnApprovedLeave(ctx context.Context, date time.Time) ([]string, error)
}
