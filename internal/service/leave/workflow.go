package leave

import (
	"math"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/leave"
)

// DaysUntil returns the number of days from `from` to `until`, rounding
// partial days up. Same-day and past starts yield zero or less.
func DaysUntil(from, until time.Time) int {
	return int(math.Ceil(until.Sub(from).Hours() / 24))
}

// InitialStatus decides the status of a freshly submitted request.
// Requests filed more than two days ahead of their start date are
// approved on the spot; short-notice requests wait for a manager.
func InitialStatus(submittedAt, startDate time.Time) leave.Status {
	if DaysUntil(submittedAt, startDate) > 2 {
		return leave.StatusApproved
	}
	return leave.StatusPending
}

// CanCancelImmediately decides whether a cancellation takes effect
// without manager review. Two or more days of notice cancels outright;
// anything closer needs confirmation.
//
// Note the deliberate mismatch with InitialStatus: auto-approval needs
// strictly more than two days while immediate cancellation is satisfied
// with exactly two.
func CanCancelImmediately(now, startDate time.Time) bool {
	return DaysUntil(now, startDate) >= 2
}
