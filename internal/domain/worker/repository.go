package worker

import "context"

type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	GetByUsername(ctx context.Context, username string) (Worker, error)
	GetByEmail(ctx context.Context, email string) (Worker, error)
	List(ctx context.Context, filter WorkerFilter) ([]Worker, int64, error)

	// ListActiveByRole returns active, approved workers, optionally
	// restricted to one role. Used by bulk attendance writes.
	ListActiveByRole(ctx context.Context, role *Role) ([]Worker, error)

	Update(ctx context.Context, req UpdateWorkerRequest) error
}
