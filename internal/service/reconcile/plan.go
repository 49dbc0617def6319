// Package reconcile computes the cross-record side effects of attendance
// and leave changes as pure data, then applies them in one transaction.
// Planners never touch storage; every intended write is spelled out in a
// Plan so callers can apply all of it or none of it.
package reconcile

import (
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/attendance"
	"github.com/depotworks/workforce-backend-go/internal/domain/dailylog"
)

// LogEntry is one name added to or removed from a date's aggregate row.
type LogEntry struct {
	Date       time.Time
	Category   dailylog.Category
	WorkerName string
}

// AttendanceDelete removes the (worker, date) record only while its
// status is one of Statuses.
type AttendanceDelete struct {
	WorkerID string
	Date     time.Time
	Statuses []attendance.Status
}

// RosterRemoval pulls a worker off the date's assignment board.
type RosterRemoval struct {
	WorkerID string
	Date     time.Time
}

// Plan is the full set of side effects of one logical change.
type Plan struct {
	AttendanceUpserts []attendance.Record
	AttendanceDeletes []AttendanceDelete
	LogAdds           []LogEntry
	LogRemoves        []LogEntry
	RosterRemovals    []RosterRemoval
}

// Merge appends every effect of other onto p.
func (p *Plan) Merge(other Plan) {
	p.AttendanceUpserts = append(p.AttendanceUpserts, other.AttendanceUpserts...)
	p.AttendanceDeletes = append(p.AttendanceDeletes, other.AttendanceDeletes...)
	p.LogAdds = append(p.LogAdds, other.LogAdds...)
	p.LogRemoves = append(p.LogRemoves, other.LogRemoves...)
	p.RosterRemovals = append(p.RosterRemovals, other.RosterRemovals...)
}

// Empty reports whether the plan carries no effects at all.
func (p Plan) Empty() bool {
	return len(p.AttendanceUpserts) == 0 &&
		len(p.AttendanceDeletes) == 0 &&
		len(p.LogAdds) == 0 &&
		len(p.LogRemoves) == 0 &&
		len(p.RosterRemovals) == 0
}

// CategoryForStatus maps a notable attendance status onto its daily-log
// category. ok is false for statuses that never reach the log.
func CategoryForStatus(s attendance.Status) (dailylog.Category, bool) {
	switch s {
	case attendance.StatusAbsent:
		return dailylog.CategoryAbsent, true
	case attendance.StatusLate:
		return dailylog.CategoryLate, true
	case attendance.StatusEarlyLeave:
		return dailylog.CategoryEarlyLeave, true
	case attendance.StatusOffDay:
		return dailylog.CategoryOffDay, true
	}
	return "", false
}

// DateRange returns every calendar date from start through end inclusive.
// An inverted range yields nil.
func DateRange(start, end time.Time) []time.Time {
	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// StatusChange plans one worker's attendance write for one date.
//
// The worker's name is first cleared from every status category for the
// date, then re-added under the new status's category when it has one.
// The remove-then-add sequence makes repeated writes idempotent and keeps
// a worker out of two categories at once. Absent and off-day statuses
// additionally pull the worker off the date's roster.
func StatusChange(workerID, workerName string, date time.Time, status attendance.Status, workHours, overtimeHours float64) Plan {
	plan := Plan{
		AttendanceUpserts: []attendance.Record{{
			WorkerID:      workerID,
			Date:          date,
			Status:        status,
			WorkHours:     workHours,
			OvertimeHours: overtimeHours,
		}},
	}

	for _, c := range dailylog.Categories {
		plan.LogRemoves = append(plan.LogRemoves, LogEntry{
			Date:       date,
			Category:   c,
			WorkerName: workerName,
		})
	}

	if category, ok := CategoryForStatus(status); ok {
		plan.LogAdds = append(plan.LogAdds, LogEntry{
			Date:       date,
			Category:   category,
			WorkerName: workerName,
		})
	}

	if status.RemovesFromRoster() {
		plan.RosterRemovals = append(plan.RosterRemovals, RosterRemoval{
			WorkerID: workerID,
			Date:     date,
		})
	}

	return plan
}

// LeaveApproval plans the attendance fallout of an approved leave: every
// weekday in the range becomes an absence and every weekend day an off
// day, both with zero hours.
func LeaveApproval(workerID, workerName string, start, end time.Time) Plan {
	var plan Plan
	for _, date := range DateRange(start, end) {
		status := attendance.StatusAbsent
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			status = attendance.StatusOffDay
		}
		plan.Merge(StatusChange(workerID, workerName, date, status, 0, 0))
	}
	return plan
}

// LeaveReversal plans the cleanup after an approved leave is cancelled:
// leave-derived attendance records are deleted and the worker's name is
// cleared from the log. Records a manager has since rewritten to another
// status are left untouched, and nobody is re-added to any roster.
func LeaveReversal(workerID, workerName string, start, end time.Time) Plan {
	var plan Plan
	for _, date := range DateRange(start, end) {
		plan.AttendanceDeletes = append(plan.AttendanceDeletes, AttendanceDelete{
			WorkerID: workerID,
			Date:     date,
			Statuses: []attendance.Status{attendance.StatusAbsent, attendance.StatusOffDay},
		})
		plan.LogRemoves = append(plan.LogRemoves,
			LogEntry{Date: date, Category: dailylog.CategoryAbsent, WorkerName: workerName},
			LogEntry{Date: date, Category: dailylog.CategoryOffDay, WorkerName: workerName},
		)
	}
	return plan
}
