package roster

import (
	"context"
	"fmt"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/attendance"
	"github.com/depotworks/workforce-backend-go/internal/domain/leave"
	"github.com/depotworks/workforce-backend-go/internal/domain/roster"
	"github.com/depotworks/workforce-backend-go/internal/pkg/database"
	"github.com/depotworks/workforce-backend-go/internal/pkg/holiday"
	"github.com/depotworks/workforce-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type RosterService interface {
	// Get returns the roster and assignments for date; a date without a
	// roster yields an empty board, not an error.
	Get(ctx context.Context, date time.Time) (roster.Roster, []roster.Assignment, error)

	// Set replaces the date's whole assignment board atomically, keeping
	// attendance records consistent with who is on and off the board.
	Set(ctx context.Context, req roster.SetRosterRequest) (roster.Roster, []roster.Assignment, error)

	// CopyRange replicates one date's board onto every date in a range,
	// optionally skipping weekends and holidays.
	CopyRange(ctx context.Context, req roster.CopyRosterRequest) (int, error)
}

type RosterServiceImpl struct {
	db *database.DB
	roster.RosterRepository
	attendance.AttendanceRepository
	leave.LeaveRequestRepository
	calendar *holiday.Calendar
	location *time.Location
}

func NewRosterService(db *database.DB, rosterRepository roster.RosterRepository, attendanceRepository attendance.AttendanceRepository, leaveRepository leave.LeaveRequestRepository, calendar *holiday.Calendar, location *time.Location) RosterService {
	return &RosterServiceImpl{
		db:                     db,
		RosterRepository:       rosterRepository,
		AttendanceRepository:   attendanceRepository,
		LeaveRequestRepository: leaveRepository,
		calendar:               calendar,
		location:               location,
	}
}

// Get implements RosterService.
func (s *RosterServiceImpl) Get(ctx context.Context, date time.Time) (roster.Roster, []roster.Assignment, error) {
	board, err := s.RosterRepository.GetByDate(ctx, date)
	if err != nil {
		return roster.Roster{}, nil, fmt.Errorf("failed to get roster: %w", err)
	}
	if board == nil {
		return roster.Roster{Date: date}, []roster.Assignment{}, nil
	}

	assignments, err := s.RosterRepository.ListAssignments(ctx, board.ID)
	if err != nil {
		return roster.Roster{}, nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	return *board, assignments, nil
}

// Set implements RosterService.
func (s *RosterServiceImpl) Set(ctx context.Context, req roster.SetRosterRequest) (roster.Roster, []roster.Assignment, error) {
	if err := req.Validate(); err != nil {
		return roster.Roster{}, nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return roster.Roster{}, nil, fmt.Errorf("failed to parse date: %w", err)
	}

	var board roster.Roster
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		board, err = s.setForDate(txCtx, date, req.Assignments, req.PaletteTeamID, req.CleaningTeamID)
		return err
	})
	if err != nil {
		return roster.Roster{}, nil, err
	}

	assignments, err := s.RosterRepository.ListAssignments(ctx, board.ID)
	if err != nil {
		return roster.Roster{}, nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	return board, assignments, nil
}

// setForDate runs the board replacement for one date. The caller is
// responsible for the enclosing transaction.
func (s *RosterServiceImpl) setForDate(ctx context.Context, date time.Time, inputs []roster.AssignmentInput, paletteTeamID, cleaningTeamID *string) (roster.Roster, error) {
	board, err := s.RosterRepository.UpsertRoster(ctx, date, paletteTeamID, cleaningTeamID)
	if err != nil {
		return roster.Roster{}, fmt.Errorf("failed to upsert roster: %w", err)
	}

	previous, err := s.RosterRepository.ListAssignments(ctx, board.ID)
	if err != nil {
		return roster.Roster{}, fmt.Errorf("failed to list previous assignments: %w", err)
	}

	// Workers already on approved leave never land on the board.
	onLeave, err := s.LeaveRequestRepository.ListWorkersOnApprovedLeave(ctx, date)
	if err != nil {
		return roster.Roster{}, fmt.Errorf("failed to list workers on leave: %w", err)
	}
	excluded := make(map[string]bool, len(onLeave))
	for _, id := range onLeave {
		excluded[id] = true
	}

	next := make([]roster.Assignment, 0, len(inputs))
	nextSet := make(map[string]bool, len(inputs))
	for _, in := range inputs {
		if excluded[in.WorkerID] || nextSet[in.WorkerID] {
			continue
		}
		nextSet[in.WorkerID] = true
		next = append(next, roster.Assignment{
			RosterID: board.ID,
			WorkerID: in.WorkerID,
			Position: in.Position,
			Team:     in.Team,
		})
	}

	if err := s.RosterRepository.ReplaceAssignments(ctx, board.ID, next); err != nil {
		return roster.Roster{}, fmt.Errorf("failed to replace assignments: %w", err)
	}

	// Workers dropped from the board keep their attendance row but lose
	// their hours for the date.
	for _, prev := range previous {
		if nextSet[prev.WorkerID] {
			continue
		}
		if err := s.zeroHours(ctx, prev.WorkerID, date); err != nil {
			return roster.Roster{}, err
		}
	}

	// Newly boarded workers without an attendance row get one: scheduled
	// for future dates, present otherwise.
	for _, a := range next {
		if err := s.ensureAttendance(ctx, a.WorkerID, date); err != nil {
			return roster.Roster{}, err
		}
	}

	return board, nil
}

func (s *RosterServiceImpl) zeroHours(ctx context.Context, workerID string, date time.Time) error {
	rec, err := s.AttendanceRepository.GetByWorkerAndDate(ctx, workerID, date)
	if err != nil {
		return fmt.Errorf("failed to get attendance record: %w", err)
	}

	record := attendance.Record{
		WorkerID:      workerID,
		Date:          date,
		Status:        attendance.StatusNone,
		WorkHours:     0,
		OvertimeHours: 0,
	}
	if rec != nil {
		record.Status = rec.Status
	}

	if _, err := s.AttendanceRepository.Upsert(ctx, record); err != nil {
		return fmt.Errorf("failed to zero attendance hours: %w", err)
	}
	return nil
}

func (s *RosterServiceImpl) ensureAttendance(ctx context.Context, workerID string, date time.Time) error {
	rec, err := s.AttendanceRepository.GetByWorkerAndDate(ctx, workerID, date)
	if err != nil {
		return fmt.Errorf("failed to get attendance record: %w", err)
	}
	if rec != nil {
		return nil
	}

	now := time.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	status := attendance.StatusPresent
	if date.After(today) {
		status = attendance.StatusScheduled
	}

	_, err = s.AttendanceRepository.Upsert(ctx, attendance.Record{
		WorkerID:      workerID,
		Date:          date,
		Status:        status,
		WorkHours:     attendance.DefaultWorkHours,
		OvertimeHours: attendance.DefaultOvertimeHours,
	})
	if err != nil {
		return fmt.Errorf("failed to create attendance record: %w", err)
	}
	return nil
}

// CopyRange implements RosterService.
func (s *RosterServiceImpl) CopyRange(ctx context.Context, req roster.CopyRosterRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	sourceDate, _ := time.Parse("2006-01-02", req.SourceDate)
	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	source, err := s.RosterRepository.GetByDate(ctx, sourceDate)
	if err != nil {
		return 0, fmt.Errorf("failed to get source roster: %w", err)
	}
	if source == nil {
		return 0, roster.ErrRosterNotFound
	}

	assignments, err := s.RosterRepository.ListAssignments(ctx, source.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to list source assignments: %w", err)
	}

	inputs := make([]roster.AssignmentInput, 0, len(assignments))
	for _, a := range assignments {
		inputs = append(inputs, roster.AssignmentInput{
			WorkerID: a.WorkerID,
			Position: a.Position,
			Team:     a.Team,
		})
	}

	copied := 0
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
			if d.Equal(sourceDate) {
				continue
			}
			if req.SkipHolidays && s.calendar.IsWeekendOrHoliday(d) {
				continue
			}
			if _, err := s.setForDate(txCtx, d, inputs, source.PaletteTeamID, source.CleaningTeamID); err != nil {
				return err
			}
			copied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return copied, nil
}
