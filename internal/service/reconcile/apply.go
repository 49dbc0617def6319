package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/attendance"
	"github.com/depotworks/workforce-backend-go/internal/domain/dailylog"
	"github.com/depotworks/workforce-backend-go/internal/domain/roster"
)

// LogAggregator is the slice of the daily-log service the applier needs.
type LogAggregator interface {
	AddStatusEntry(ctx context.Context, date time.Time, category dailylog.Category, workerName string) error
	RemoveStatusEntry(ctx context.Context, date time.Time, category dailylog.Category, workerName string) error
}

// Applier executes plans against storage. Callers wrap Apply in a
// transaction so a plan lands atomically.
type Applier struct {
	attendance.AttendanceRepository
	roster.RosterRepository
	logs LogAggregator
}

func NewApplier(attendanceRepository attendance.AttendanceRepository, rosterRepository roster.RosterRepository, logs LogAggregator) *Applier {
	return &Applier{
		AttendanceRepository: attendanceRepository,
		RosterRepository:     rosterRepository,
		logs:                 logs,
	}
}

// Apply executes every effect of the plan in a fixed order: attendance
// upserts, attendance deletes, log removals, log additions, roster
// removals. Removals run before additions so a status change moves a
// name between categories instead of dropping it.
func (a *Applier) Apply(ctx context.Context, plan Plan) error {
	for _, rec := range plan.AttendanceUpserts {
		if _, err := a.AttendanceRepository.Upsert(ctx, rec); err != nil {
			return fmt.Errorf("failed to upsert attendance record: %w", err)
		}
	}

	for _, del := range plan.AttendanceDeletes {
		if err := a.AttendanceRepository.DeleteByWorkerDateStatuses(ctx, del.WorkerID, del.Date, del.Statuses); err != nil {
			return fmt.Errorf("failed to delete attendance record: %w", err)
		}
	}

	for _, entry := range plan.LogRemoves {
		if err := a.logs.RemoveStatusEntry(ctx, entry.Date, entry.Category, entry.WorkerName); err != nil {
			return fmt.Errorf("failed to remove log entry: %w", err)
		}
	}

	for _, entry := range plan.LogAdds {
		if err := a.logs.AddStatusEntry(ctx, entry.Date, entry.Category, entry.WorkerName); err != nil {
			return fmt.Errorf("failed to add log entry: %w", err)
		}
	}

	for _, rem := range plan.RosterRemovals {
		if err := a.RosterRepository.DeleteAssignmentByWorkerAndDate(ctx, rem.WorkerID, rem.Date); err != nil {
			return fmt.Errorf("failed to remove roster assignment: %w", err)
		}
	}

	return nil
}
