package leave

import "time"

type Status string

const (
	StatusPending             Status = "pending"
	StatusApproved            Status = "approved"
	StatusRejected            Status = "rejected"
	StatusCancelled           Status = "cancelled"
	StatusCancellationPending Status = "cancellation_pending"
)

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCancelled
}

// Request is a worker's request for one or more consecutive days off.
// StartDate and EndDate form an inclusive range; status only moves
// through the defined transitions.
type Request struct {
	ID        string
	WorkerID  string
	StartDate time.Time
	EndDate   time.Time
	Type      string
	Reason    string
	Status    Status

	DecidedBy *string
	DecidedAt *time.Time

	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	WorkerName *string
}
