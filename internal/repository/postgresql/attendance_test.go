package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/attendance"
	"github.com/depotworks/workforce-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceUpsertKeepsOneRowPerWorkerDate(t *testing.T) {
	db := newTestDatabase(t)
	truncateTables(t, db, "attendance_records", "workers")

	repo := postgresql.NewAttendanceRepository(db)
	ctx := context.Background()

	workerID := createTestWorker(t, db, "upsert_worker", "김철수")
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	first, err := repo.Upsert(ctx, attendance.Record{
		WorkerID:      workerID,
		Date:          day,
		Status:        attendance.StatusScheduled,
		WorkHours:     8,
		OvertimeHours: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusScheduled, first.Status)

	second, err := repo.Upsert(ctx, attendance.Record{
		WorkerID:      workerID,
		Date:          day,
		Status:        attendance.StatusLate,
		WorkHours:     6.5,
		OvertimeHours: 1,
	})
	require.NoError(t, err)

	// Same (worker, date) key lands on the same row with the new values.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, attendance.StatusLate, second.Status)
	assert.Equal(t, 6.5, second.WorkHours)
	assert.Equal(t, 1.0, second.OvertimeHours)

	var count int64
	err = db.QueryRow(ctx,
		"SELECT COUNT(*) FROM attendance_records WHERE worker_id = $1 AND date = $2",
		workerID, day,
	).Scan(&count)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestAttendanceAdvanceScheduled(t *testing.T) {
	db := newTestDatabase(t)
	truncateTables(t, db, "attendance_records", "workers")

	repo := postgresql.NewAttendanceRepository(db)
	ctx := context.Background()

	workerID := createTestWorker(t, db, "advance_worker", "이영희")
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	for _, rec := range []attendance.Record{
		{WorkerID: workerID, Date: today, Status: attendance.StatusScheduled, WorkHours: 8},
		{WorkerID: workerID, Date: tomorrow, Status: attendance.StatusScheduled, WorkHours: 8},
	} {
		_, err := repo.Upsert(ctx, rec)
		require.NoError(t, err)
	}

	advanced, err := repo.AdvanceScheduled(ctx, today)
	require.NoError(t, err)
	assert.EqualValues(t, 1, advanced)

	todayRec, err := repo.GetByWorkerAndDate(ctx, workerID, today)
	require.NoError(t, err)
	require.NotNil(t, todayRec)
	assert.Equal(t, attendance.StatusPresent, todayRec.Status)

	// Future dates stay scheduled.
	tomorrowRec, err := repo.GetByWorkerAndDate(ctx, workerID, tomorrow)
	require.NoError(t, err)
	require.NotNil(t, tomorrowRec)
	assert.Equal(t, attendance.StatusScheduled, tomorrowRec.Status)
}
