package leave

import (
	"testing"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDaysUntil(t *testing.T) {
	assert.Equal(t, 0, DaysUntil(date("2025-01-01"), date("2025-01-01")))
	assert.Equal(t, 1, DaysUntil(date("2025-01-01"), date("2025-01-02")))
	assert.Equal(t, 9, DaysUntil(date("2025-01-01"), date("2025-01-10")))
	assert.Equal(t, -1, DaysUntil(date("2025-01-02"), date("2025-01-01")))

	// Partial days round up.
	submitted := time.Date(2025, 1, 1, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, DaysUntil(submitted, date("2025-01-03")))
}

func TestInitialStatus(t *testing.T) {
	// Nine days of notice is approved on the spot.
	assert.Equal(t, leave.StatusApproved, InitialStatus(date("2025-01-01"), date("2025-01-10")))

	// Exactly three days is still past the threshold.
	assert.Equal(t, leave.StatusApproved, InitialStatus(date("2025-01-01"), date("2025-01-04")))

	// One day of notice waits for a manager.
	assert.Equal(t, leave.StatusPending, InitialStatus(date("2025-01-01"), date("2025-01-02")))

	// Exactly two days is not strictly more than two.
	assert.Equal(t, leave.StatusPending, InitialStatus(date("2025-01-01"), date("2025-01-03")))

	assert.Equal(t, leave.StatusPending, InitialStatus(date("2025-01-01"), date("2025-01-01")))
}

func TestCanCancelImmediately(t *testing.T) {
	// Five days out cancels outright.
	assert.True(t, CanCancelImmediately(date("2025-01-01"), date("2025-01-06")))

	// Exactly two days still cancels outright, unlike auto-approval.
	assert.True(t, CanCancelImmediately(date("2025-01-01"), date("2025-01-03")))

	// Starting tomorrow needs manager confirmation.
	assert.False(t, CanCancelImmediately(date("2025-01-01"), date("2025-01-02")))

	assert.False(t, CanCancelImmediately(date("2025-01-01"), date("2025-01-01")))
}
