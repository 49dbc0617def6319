package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/dailylog"
	"github.com/depotworks/workforce-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyLogGetByDateAndPrefix(t *testing.T) {
	db := newTestDatabase(t)
	truncateTables(t, db, "daily_logs", "workers")

	repo := postgresql.NewDailyLogRepository(db)
	ctx := context.Background()

	authorID := createTestWorker(t, db, "log_author", "박영희")
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	aggregate, err := repo.Create(ctx, dailylog.Log{
		Date:     day,
		Content:  "[결근] 김철수",
		AuthorID: &authorID,
	})
	require.NoError(t, err)

	// A free-form note on the same date must not shadow the aggregate row.
	_, err = repo.Create(ctx, dailylog.Log{
		Date:     day,
		Content:  "자재 입고 지연",
		AuthorID: &authorID,
	})
	require.NoError(t, err)

	found, err := repo.GetByDateAndPrefix(ctx, day, "[결근]")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, aggregate.ID, found.ID)
	assert.Equal(t, "[결근] 김철수", found.Content)

	missing, err := repo.GetByDateAndPrefix(ctx, day, "[지각]")
	require.NoError(t, err)
	assert.Nil(t, missing)

	otherDay, err := repo.GetByDateAndPrefix(ctx, day.AddDate(0, 0, 1), "[결근]")
	require.NoError(t, err)
	assert.Nil(t, otherDay)
}
