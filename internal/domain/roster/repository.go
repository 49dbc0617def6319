package roster

import (
	"context"
	"time"
)

type RosterRepository interface {
	// UpsertRoster inserts or updates the roster row for date.
	UpsertRoster(ctx context.Context, date time.Time, paletteTeamID, cleaningTeamID *string) (Roster, error)

	// GetByDate returns nil (no error) when no roster exists for date.
	GetByDate(ctx context.Context, date time.Time) (*Roster, error)

	ListAssignments(ctx context.Context, rosterID string) ([]Assignment, error)

	// ReplaceAssignments deletes every assignment of the roster and
	// inserts the given set in one statement sequence.
	ReplaceAssignments(ctx context.Context, rosterID string, assignments []Assignment) error

	// DeleteAssignmentByWorkerAndDate removes the worker from the date's
	// roster, if assigned. Absent rows are a no-op.
	DeleteAssignmentByWorkerAndDate(ctx context.Context, workerID string, date time.Time) error
}
