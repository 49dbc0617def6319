package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// advanceRecorder records AdvanceScheduled calls and serves canned counts.
type advanceRecorder struct {
	calls   []time.Time
	updated int64
}

func (r *advanceRecorder) Upsert(context.Context, attendance.Record) (attendance.Record, error) {
	return attendance.Record{}, nil
}

func (r *advanceRecorder) GetByWorkerAndDate(context.Context, string, time.Time) (*attendance.Record, error) {
	return nil, nil
}

func (r *advanceRecorder) DeleteByWorkerDateStatuses(context.Context, string, time.Time, []attendance.Status) error {
	return nil
}

func (r *advanceRecorder) AdvanceScheduled(_ context.Context, through time.Time) (int64, error) {
	r.calls = append(r.calls, through)
	return r.updated, nil
}

func (r *advanceRecorder) List(context.Context, attendance.AttendanceFilter) ([]attendance.Record, int64, error) {
	return nil, 0, nil
}

func TestAutoAdvanceBeforeCutoffDoesNothing(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	repo := &advanceRecorder{updated: 3}
	service := NewAttendanceService(nil, repo, nil, nil, 19, seoul)

	now := time.Date(2025, 3, 10, 18, 59, 0, 0, seoul)
	advanced, err := service.AutoAdvance(context.Background(), now)

	require.NoError(t, err)
	assert.Zero(t, advanced)
	assert.Empty(t, repo.calls)
}

func TestAutoAdvanceAfterCutoff(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	repo := &advanceRecorder{updated: 3}
	service := NewAttendanceService(nil, repo, nil, nil, 19, seoul)

	now := time.Date(2025, 3, 10, 19, 1, 0, 0, seoul)
	advanced, err := service.AutoAdvance(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), advanced)
	require.Len(t, repo.calls, 1)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), repo.calls[0])
}

func TestAutoAdvanceGatesOnLocalClock(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	repo := &advanceRecorder{updated: 1}
	service := NewAttendanceService(nil, repo, nil, nil, 19, seoul)

	// 10:30 UTC is 19:30 in Seoul, so the sweep runs even though the
	// instant itself is before the cutoff hour in UTC.
	now := time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC)
	advanced, err := service.AutoAdvance(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(1), advanced)
	require.Len(t, repo.calls, 1)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), repo.calls[0])
}
