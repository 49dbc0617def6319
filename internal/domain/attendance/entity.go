package attendance

import "time"

type Status string

const (
	// StatusNone is a valid "no status" value, distinct from every
	// enumerated status.
	StatusNone       Status = ""
	StatusScheduled  Status = "scheduled"
	StatusPresent    Status = "present"
	StatusAbsent     Status = "absent"
	StatusLate       Status = "late"
	StatusEarlyLeave Status = "early_leave"
	StatusOffDay     Status = "off_day"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNone, StatusScheduled, StatusPresent, StatusAbsent,
		StatusLate, StatusEarlyLeave, StatusOffDay:
		return true
	}
	return false
}

// RemovesFromRoster reports whether the status pulls the worker off the
// date's roster board.
func (s Status) RemovesFromRoster() bool {
	return s == StatusAbsent || s == StatusOffDay
}

const (
	DefaultWorkHours     = 8.0
	DefaultOvertimeHours = 0.0
)

// Record is one worker's attendance for one calendar date. The
// (WorkerID, Date) pair is unique; all writes are upserts on that key.
type Record struct {
	ID            string
	WorkerID      string
	Date          time.Time
	Status        Status
	WorkHours     float64
	OvertimeHours float64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	WorkerName *string
}
