package reconcile

import (
	"testing"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/attendance"
	"github.com/depotworks/workforce-backend-go/internal/domain/dailylog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDateRange(t *testing.T) {
	dates := DateRange(date("2025-01-01"), date("2025-01-03"))
	require.Len(t, dates, 3)
	assert.Equal(t, date("2025-01-01"), dates[0])
	assert.Equal(t, date("2025-01-03"), dates[2])

	// Single-day range.
	assert.Len(t, DateRange(date("2025-01-01"), date("2025-01-01")), 1)

	// Inverted range yields nothing.
	assert.Empty(t, DateRange(date("2025-01-02"), date("2025-01-01")))
}

func TestCategoryForStatus(t *testing.T) {
	tests := []struct {
		status   attendance.Status
		category dailylog.Category
		ok       bool
	}{
		{attendance.StatusAbsent, dailylog.CategoryAbsent, true},
		{attendance.StatusLate, dailylog.CategoryLate, true},
		{attendance.StatusEarlyLeave, dailylog.CategoryEarlyLeave, true},
		{attendance.StatusOffDay, dailylog.CategoryOffDay, true},
		{attendance.StatusPresent, "", false},
		{attendance.StatusScheduled, "", false},
		{attendance.StatusNone, "", false},
	}
	for _, tt := range tests {
		category, ok := CategoryForStatus(tt.status)
		assert.Equal(t, tt.ok, ok, "status %q", tt.status)
		assert.Equal(t, tt.category, category, "status %q", tt.status)
	}
}

func TestStatusChangeNotable(t *testing.T) {
	day := date("2025-03-10")
	plan := StatusChange("w1", "김철수", day, attendance.StatusLate, 7, 0)

	require.Len(t, plan.AttendanceUpserts, 1)
	rec := plan.AttendanceUpserts[0]
	assert.Equal(t, "w1", rec.WorkerID)
	assert.Equal(t, attendance.StatusLate, rec.Status)
	assert.Equal(t, 7.0, rec.WorkHours)

	// The name is cleared from every category before being re-added.
	require.Len(t, plan.LogRemoves, len(dailylog.Categories))
	for i, c := range dailylog.Categories {
		assert.Equal(t, c, plan.LogRemoves[i].Category)
		assert.Equal(t, "김철수", plan.LogRemoves[i].WorkerName)
	}

	require.Len(t, plan.LogAdds, 1)
	assert.Equal(t, dailylog.CategoryLate, plan.LogAdds[0].Category)

	// Late workers stay on the roster.
	assert.Empty(t, plan.RosterRemovals)
	assert.Empty(t, plan.AttendanceDeletes)
}

func TestStatusChangePresent(t *testing.T) {
	plan := StatusChange("w1", "김철수", date("2025-03-10"), attendance.StatusPresent, 8, 1)

	// Present never reaches the log, but stale entries still get cleared.
	assert.Empty(t, plan.LogAdds)
	assert.Len(t, plan.LogRemoves, len(dailylog.Categories))
	assert.Empty(t, plan.RosterRemovals)
}

func TestStatusChangeRemovesFromRoster(t *testing.T) {
	for _, status := range []attendance.Status{attendance.StatusAbsent, attendance.StatusOffDay} {
		plan := StatusChange("w1", "김철수", date("2025-03-10"), status, 0, 0)
		require.Len(t, plan.RosterRemovals, 1, "status %q", status)
		assert.Equal(t, "w1", plan.RosterRemovals[0].WorkerID)
	}
}

func TestLeaveApproval(t *testing.T) {
	// 2025-03-07 is a Friday; the range crosses one weekend.
	plan := LeaveApproval("w1", "김철수", date("2025-03-07"), date("2025-03-10"))

	require.Len(t, plan.AttendanceUpserts, 4)

	byDate := make(map[string]attendance.Record)
	for _, rec := range plan.AttendanceUpserts {
		byDate[rec.Date.Format("2006-01-02")] = rec
	}
	assert.Equal(t, attendance.StatusAbsent, byDate["2025-03-07"].Status)
	assert.Equal(t, attendance.StatusOffDay, byDate["2025-03-08"].Status)
	assert.Equal(t, attendance.StatusOffDay, byDate["2025-03-09"].Status)
	assert.Equal(t, attendance.StatusAbsent, byDate["2025-03-10"].Status)

	for _, rec := range plan.AttendanceUpserts {
		assert.Zero(t, rec.WorkHours)
		assert.Zero(t, rec.OvertimeHours)
	}

	// Absent and off-day both pull the worker off each day's roster.
	assert.Len(t, plan.RosterRemovals, 4)
}

func TestLeaveReversal(t *testing.T) {
	plan := LeaveReversal("w1", "김철수", date("2025-03-07"), date("2025-03-08"))

	// Deletes are guarded by status so rewritten records survive.
	require.Len(t, plan.AttendanceDeletes, 2)
	for _, del := range plan.AttendanceDeletes {
		assert.Equal(t, "w1", del.WorkerID)
		assert.Equal(t, []attendance.Status{attendance.StatusAbsent, attendance.StatusOffDay}, del.Statuses)
	}

	// The name leaves both leave-derived categories for every date.
	require.Len(t, plan.LogRemoves, 4)
	categories := map[dailylog.Category]int{}
	for _, entry := range plan.LogRemoves {
		categories[entry.Category]++
	}
	assert.Equal(t, 2, categories[dailylog.CategoryAbsent])
	assert.Equal(t, 2, categories[dailylog.CategoryOffDay])

	// Reversal never re-adds anyone anywhere.
	assert.Empty(t, plan.AttendanceUpserts)
	assert.Empty(t, plan.LogAdds)
	assert.Empty(t, plan.RosterRemovals)
}

func TestPlanMergeAndEmpty(t *testing.T) {
	var plan Plan
	assert.True(t, plan.Empty())

	plan.Merge(StatusChange("w1", "김철수", date("2025-03-10"), attendance.StatusPresent, 8, 0))
	plan.Merge(StatusChange("w2", "이영희", date("2025-03-10"), attendance.StatusAbsent, 0, 0))

	assert.False(t, plan.Empty())
	assert.Len(t, plan.AttendanceUpserts, 2)
	assert.Len(t, plan.RosterRemovals, 1)
}
