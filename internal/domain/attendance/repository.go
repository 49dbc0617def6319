package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. Writes
// are upserts keyed by (worker_id, date); the unique index guarantees at
// most one row per pair.
type AttendanceRepository interface {
	// Upsert inserts or replaces the (worker, date) row.
	Upsert(ctx context.Context, record Record) (Record, error)

	// GetByWorkerAndDate returns nil (no error) when no row exists.
	GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*Record, error)

	// DeleteByWorkerDateStatuses deletes the (worker, date) row only when
	// its status is one of statuses. Deleting an absent row is a no-op.
	DeleteByWorkerDateStatuses(ctx context.Context, workerID string, date time.Time, statuses []Status) error

	// AdvanceScheduled transitions every scheduled row dated through or
	// earlier to present, returning the number of rows changed.
	AdvanceScheduled(ctx context.Context, through time.Time) (int64, error)

	List(ctx context.Context, filter AttendanceFilter) ([]Record, int64, error)
}
