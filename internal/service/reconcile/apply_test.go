package reconcile

import (
	"context"
	"testing"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/attendance"
	"github.com/depotworks/workforce-backend-go/internal/domain/dailylog"
	"github.com/depotworks/workforce-backend-go/internal/domain/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder implements the applier's storage seams and records every
// call in arrival order.
type recorder struct {
	calls []string
}

func (r *recorder) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	r.calls = append(r.calls, "upsert "+rec.WorkerID+" "+string(rec.Status))
	return rec, nil
}

func (r *recorder) GetByWorkerAndDate(context.Context, string, time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (r *recorder) DeleteByWorkerDateStatuses(_ context.Context, workerID string, _ time.Time, _ []attendance.Status) error {
	r.calls = append(r.calls, "delete "+workerID)
	return nil
}

func (r *recorder) AdvanceScheduled(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (r *recorder) List(context.Context, attendance.AttendanceFilter) ([]attendance.Record, int64, error) {
	return nil, 0, nil
}

func (r *recorder) UpsertRoster(context.Context, time.Time, *string, *string) (roster.Roster, error) {
	return roster.Roster{}, nil
}

func (r *recorder) GetByDate(context.Context, time.Time) (*roster.Roster, error) {
	return nil, nil
}

func (r *recorder) ListAssignments(context.Context, string) ([]roster.Assignment, error) {
	return nil, nil
}

func (r *recorder) ReplaceAssignments(context.Context, string, []roster.Assignment) error {
	return nil
}

func (r *recorder) DeleteAssignmentByWorkerAndDate(_ context.Context, workerID string, _ time.Time) error {
	r.calls = append(r.calls, "unassign "+workerID)
	return nil
}

func (r *recorder) AddStatusEntry(_ context.Context, _ time.Time, category dailylog.Category, workerName string) error {
	r.calls = append(r.calls, "log-add "+string(category)+" "+workerName)
	return nil
}

func (r *recorder) RemoveStatusEntry(_ context.Context, _ time.Time, category dailylog.Category, workerName string) error {
	r.calls = append(r.calls, "log-remove "+string(category)+" "+workerName)
	return nil
}

func TestApplyOrdering(t *testing.T) {
	rec := &recorder{}
	applier := NewApplier(rec, rec, rec)

	day := date("2025-03-10")
	plan := StatusChange("w1", "김철수", day, attendance.StatusAbsent, 0, 0)

	require.NoError(t, applier.Apply(context.Background(), plan))

	require.Len(t, rec.calls, 7)
	assert.Equal(t, "upsert w1 absent", rec.calls[0])

	// Every category removal lands before the single add, so a worker
	// moving between categories is never left in two at once.
	assert.Equal(t, []string{
		"log-remove 결근 김철수",
		"log-remove 지각 김철수",
		"log-remove 조퇴 김철수",
		"log-remove 휴무 김철수",
	}, rec.calls[1:5])
	assert.Equal(t, "log-add 결근 김철수", rec.calls[5])
	assert.Equal(t, "unassign w1", rec.calls[6])
}

func TestApplyReversal(t *testing.T) {
	rec := &recorder{}
	applier := NewApplier(rec, rec, rec)

	plan := LeaveReversal("w1", "김철수", date("2025-03-10"), date("2025-03-10"))

	require.NoError(t, applier.Apply(context.Background(), plan))

	assert.Equal(t, []string{
		"delete w1",
		"log-remove 결근 김철수",
		"log-remove 휴무 김철수",
	}, rec.calls)
}
