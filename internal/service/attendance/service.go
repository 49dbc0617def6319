package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/attendance"
	"github.com/depotworks/workforce-backend-go/internal/domain/worker"
	"github.com/depotworks/workforce-backend-go/internal/pkg/database"
	"github.com/depotworks/workforce-backend-go/internal/pkg/validator"
	"github.com/depotworks/workforce-backend-go/internal/repository/postgresql"
	"github.com/depotworks/workforce-backend-go/internal/service/reconcile"
	"github.com/jackc/pgx/v5"
)

type AttendanceService interface {
	// Set writes one worker's status for one date, with all of its
	// daily-log and roster fallout, atomically.
	Set(ctx context.Context, req attendance.SetAttendanceRequest) (attendance.Record, error)

	// BatchSet writes many records with per-item isolation: one bad item
	// is counted and skipped, never aborting the rest.
	BatchSet(ctx context.Context, req attendance.BatchSetAttendanceRequest) (attendance.BatchSetResult, error)

	// BulkSet stamps one status over a date range for every active
	// worker, all-or-nothing.
	BulkSet(ctx context.Context, req attendance.BulkSetAttendanceRequest) (int, error)

	// AutoAdvance promotes scheduled records dated now or earlier to
	// present, once the local time has passed the configured hour.
	AutoAdvance(ctx context.Context, now time.Time) (int64, error)

	List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, int64, error)
}

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	worker.WorkerRepository
	applier         *reconcile.Applier
	autoAdvanceHour int
	location        *time.Location
}

func NewAttendanceService(db *database.DB, attendanceRepository attendance.AttendanceRepository, workerRepository worker.WorkerRepository, applier *reconcile.Applier, autoAdvanceHour int, location *time.Location) AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepository,
		WorkerRepository:     workerRepository,
		applier:              applier,
		autoAdvanceHour:      autoAdvanceHour,
		location:             location,
	}
}

// Set implements AttendanceService.
func (a *AttendanceServiceImpl) Set(ctx context.Context, req attendance.SetAttendanceRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	subject, err := a.WorkerRepository.GetByID(ctx, req.WorkerID)
	if err != nil {
		return attendance.Record{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to parse date: %w", err)
	}

	workHours := validator.ParseFloatOr(req.WorkHours, attendance.DefaultWorkHours)
	overtimeHours := validator.ParseFloatOr(req.OvertimeHours, attendance.DefaultOvertimeHours)

	plan := reconcile.StatusChange(subject.ID, subject.Name, date, attendance.Status(req.Status), workHours, overtimeHours)

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return a.applier.Apply(txCtx, plan)
	})
	if err != nil {
		return attendance.Record{}, err
	}

	saved, err := a.AttendanceRepository.GetByWorkerAndDate(ctx, subject.ID, date)
	if err != nil {
		return attendance.Record{}, err
	}
	if saved == nil {
		return attendance.Record{}, fmt.Errorf("attendance record missing after write")
	}
	saved.WorkerName = &subject.Name
	return *saved, nil
}

// BatchSet implements AttendanceService.
func (a *AttendanceServiceImpl) BatchSet(ctx context.Context, req attendance.BatchSetAttendanceRequest) (attendance.BatchSetResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.BatchSetResult{}, err
	}

	var result attendance.BatchSetResult
	for _, item := range req.Records {
		if _, err := a.Set(ctx, item); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, attendance.BatchItemError{
				WorkerID: item.WorkerID,
				Date:     item.Date,
				Message:  err.Error(),
			})
			continue
		}
		result.Succeeded++
	}

	return result, nil
}

// BulkSet implements AttendanceService.
func (a *AttendanceServiceImpl) BulkSet(ctx context.Context, req attendance.BulkSetAttendanceRequest) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	var role *worker.Role
	if req.Role != "" {
		r := worker.Role(req.Role)
		role = &r
	}

	workers, err := a.WorkerRepository.ListActiveByRole(ctx, role)
	if err != nil {
		return 0, fmt.Errorf("failed to list workers: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	workHours := validator.ParseFloatOr(req.WorkHours, attendance.DefaultWorkHours)
	overtimeHours := validator.ParseFloatOr(req.OvertimeHours, attendance.DefaultOvertimeHours)
	status := attendance.Status(req.Status)

	var plan reconcile.Plan
	for _, date := range reconcile.DateRange(startDate, endDate) {
		for _, w := range workers {
			plan.Merge(reconcile.StatusChange(w.ID, w.Name, date, status, workHours, overtimeHours))
		}
	}

	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return a.applier.Apply(txCtx, plan)
	})
	if err != nil {
		return 0, err
	}

	return len(plan.AttendanceUpserts), nil
}

// AutoAdvance implements AttendanceService.
func (a *AttendanceServiceImpl) AutoAdvance(ctx context.Context, now time.Time) (int64, error) {
	local := now.In(a.location)
	if local.Hour() < a.autoAdvanceHour {
		return 0, nil
	}

	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	updated, err := a.AttendanceRepository.AdvanceScheduled(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to advance scheduled records: %w", err)
	}
	return updated, nil
}

// List implements AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, int64, error) {
	return a.AttendanceRepository.List(ctx, filter)
}
