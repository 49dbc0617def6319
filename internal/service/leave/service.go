package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/leave"
	"github.com/depotworks/workforce-backend-go/internal/domain/worker"
	"github.com/depotworks/workforce-backend-go/internal/pkg/database"
	"github.com/depotworks/workforce-backend-go/internal/repository/postgresql"
	"github.com/depotworks/workforce-backend-go/internal/service/reconcile"
	"github.com/jackc/pgx/v5"
)

type LeaveService interface {
	Submit(ctx context.Context, callerID string, callerRole worker.Role, req leave.CreateLeaveRequest) (leave.Request, error)
	Approve(ctx context.Context, managerID string, requestID string) (leave.Request, error)
	Reject(ctx context.Context, managerID string, requestID string) (leave.Request, error)
	Cancel(ctx context.Context, callerID string, callerRole worker.Role, requestID string) (leave.Request, error)
	ConfirmCancellation(ctx context.Context, managerID string, requestID string) (leave.Request, error)
	DenyCancellation(ctx context.Context, managerID string, requestID string) (leave.Request, error)
	Delete(ctx context.Context, callerID string, callerRole worker.Role, requestID string) error
	Get(ctx context.Context, callerID string, callerRole worker.Role, requestID string) (leave.Request, error)
	List(ctx context.Context, filter leave.RequestFilter) ([]leave.Request, int64, error)
	ListMy(ctx context.Context, workerID string, filter leave.RequestFilter) ([]leave.Request, int64, error)
}

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRequestRepository
	worker.WorkerRepository
	applier *reconcile.Applier
}

func NewLeaveService(db *database.DB, leaveRepository leave.LeaveRequestRepository, workerRepository worker.WorkerRepository, applier *reconcile.Applier) LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveRequestRepository: leaveRepository,
		WorkerRepository:       workerRepository,
		applier:                applier,
	}
}

// Submit implements LeaveService.
func (l *LeaveServiceImpl) Submit(ctx context.Context, callerID string, callerRole worker.Role, req leave.CreateLeaveRequest) (leave.Request, error) {
	if req.WorkerID == "" {
		req.WorkerID = callerID
	}
	if err := req.Validate(); err != nil {
		return leave.Request{}, err
	}

	// Workers only file for themselves.
	if callerRole != worker.RoleManager && req.WorkerID != callerID {
		return leave.Request{}, leave.ErrNotRequestOwner
	}

	subject, err := l.WorkerRepository.GetByID(ctx, req.WorkerID)
	if err != nil {
		return leave.Request{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	submittedAt := time.Now()
	request := leave.Request{
		WorkerID:    subject.ID,
		StartDate:   startDate,
		EndDate:     endDate,
		Type:        req.Type,
		Reason:      req.Reason,
		Status:      InitialStatus(submittedAt, startDate),
		SubmittedAt: submittedAt,
	}

	var created leave.Request
	err = postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = l.LeaveRequestRepository.Create(txCtx, request)
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}

		if created.Status == leave.StatusApproved {
			plan := reconcile.LeaveApproval(subject.ID, subject.Name, startDate, endDate)
			if err := l.applier.Apply(txCtx, plan); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return leave.Request{}, err
	}

	created.WorkerName = &subject.Name
	return created, nil
}

// Approve implements LeaveService.
func (l *LeaveServiceImpl) Approve(ctx context.Context, managerID string, requestID string) (leave.Request, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.Request{}, err
	}

	if request.Status != leave.StatusPending {
		return leave.Request{}, leave.ErrLeaveNotPending
	}

	subject, err := l.WorkerRepository.GetByID(ctx, request.WorkerID)
	if err != nil {
		return leave.Request{}, err
	}

	decidedAt := time.Now()
	err = postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		update := leave.UpdateStatusRequest{
			ID:        request.ID,
			Status:    leave.StatusApproved,
			DecidedBy: &managerID,
			DecidedAt: &decidedAt,
		}
		if err := l.LeaveRequestRepository.UpdateStatus(txCtx, update); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		plan := reconcile.LeaveApproval(subject.ID, subject.Name, request.StartDate, request.EndDate)
		return l.applier.Apply(txCtx, plan)
	})
	if err != nil {
		return leave.Request{}, err
	}

	request.Status = leave.StatusApproved
	request.DecidedBy = &managerID
	request.DecidedAt = &decidedAt
	return request, nil
}

// Reject implements LeaveService.
//
// Pending, approved and cancellation-pending requests can all be
// rejected. Rejecting a request that was approved deletes the absent and
// off-day rows its approval created, in the same transaction.
func (l *LeaveServiceImpl) Reject(ctx context.Context, managerID string, requestID string) (leave.Request, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.Request{}, err
	}

	if request.Status.Terminal() {
		return leave.Request{}, leave.ErrLeaveFinalized
	}

	subject, err := l.WorkerRepository.GetByID(ctx, request.WorkerID)
	if err != nil {
		return leave.Request{}, err
	}

	decidedAt := time.Now()
	err = postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		update := leave.UpdateStatusRequest{
			ID:        request.ID,
			Status:    leave.StatusRejected,
			DecidedBy: &managerID,
			DecidedAt: &decidedAt,
		}
		if err := l.LeaveRequestRepository.UpdateStatus(txCtx, update); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		if request.Status == leave.StatusPending {
			return nil
		}
		plan := reconcile.LeaveReversal(subject.ID, subject.Name, request.StartDate, request.EndDate)
		return l.applier.Apply(txCtx, plan)
	})
	if err != nil {
		return leave.Request{}, err
	}

	request.Status = leave.StatusRejected
	request.DecidedBy = &managerID
	request.DecidedAt = &decidedAt
	return request, nil
}

// Cancel implements LeaveService.
//
// Pending requests cancel outright. Approved requests cancel outright
// only with enough notice; close to the start date the request parks in
// cancellation_pending until a manager confirms or denies it.
func (l *LeaveServiceImpl) Cancel(ctx context.Context, callerID string, callerRole worker.Role, requestID string) (leave.Request, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.Request{}, err
	}

	if callerRole != worker.RoleManager && request.WorkerID != callerID {
		return leave.Request{}, leave.ErrNotRequestOwner
	}

	switch request.Status {
	case leave.StatusPending:
		update := leave.UpdateStatusRequest{ID: request.ID, Status: leave.StatusCancelled}
		if err := l.LeaveRequestRepository.UpdateStatus(ctx, update); err != nil {
			return leave.Request{}, fmt.Errorf("failed to update leave request: %w", err)
		}
		request.Status = leave.StatusCancelled
		return request, nil

	case leave.StatusApproved:
		if !CanCancelImmediately(time.Now(), request.StartDate) {
			update := leave.UpdateStatusRequest{ID: request.ID, Status: leave.StatusCancellationPending}
			if err := l.LeaveRequestRepository.UpdateStatus(ctx, update); err != nil {
				return leave.Request{}, fmt.Errorf("failed to update leave request: %w", err)
			}
			request.Status = leave.StatusCancellationPending
			return request, nil
		}
		return l.cancelApproved(ctx, request, nil)

	case leave.StatusCancellationPending:
		return leave.Request{}, leave.ErrCancellationNotPending

	default:
		return leave.Request{}, leave.ErrLeaveFinalized
	}
}

// ConfirmCancellation implements LeaveService.
func (l *LeaveServiceImpl) ConfirmCancellation(ctx context.Context, managerID string, requestID string) (leave.Request, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.Request{}, err
	}

	if request.Status != leave.StatusCancellationPending {
		return leave.Request{}, leave.ErrCancellationNotPending
	}

	return l.cancelApproved(ctx, request, &managerID)
}

// DenyCancellation implements LeaveService.
func (l *LeaveServiceImpl) DenyCancellation(ctx context.Context, managerID string, requestID string) (leave.Request, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.Request{}, err
	}

	if request.Status != leave.StatusCancellationPending {
		return leave.Request{}, leave.ErrCancellationNotPending
	}

	decidedAt := time.Now()
	update := leave.UpdateStatusRequest{
		ID:        request.ID,
		Status:    leave.StatusApproved,
		DecidedBy: &managerID,
		DecidedAt: &decidedAt,
	}
	if err := l.LeaveRequestRepository.UpdateStatus(ctx, update); err != nil {
		return leave.Request{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	request.Status = leave.StatusApproved
	request.DecidedBy = &managerID
	request.DecidedAt = &decidedAt
	return request, nil
}

// cancelApproved flips an approved (or cancellation-pending) request to
// cancelled and reverses its attendance fallout in one transaction.
func (l *LeaveServiceImpl) cancelApproved(ctx context.Context, request leave.Request, decidedBy *string) (leave.Request, error) {
	subject, err := l.WorkerRepository.GetByID(ctx, request.WorkerID)
	if err != nil {
		return leave.Request{}, err
	}

	decidedAt := time.Now()
	err = postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		update := leave.UpdateStatusRequest{
			ID:        request.ID,
			Status:    leave.StatusCancelled,
			DecidedBy: decidedBy,
			DecidedAt: &decidedAt,
		}
		if err := l.LeaveRequestRepository.UpdateStatus(txCtx, update); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		plan := reconcile.LeaveReversal(subject.ID, subject.Name, request.StartDate, request.EndDate)
		return l.applier.Apply(txCtx, plan)
	})
	if err != nil {
		return leave.Request{}, err
	}

	request.Status = leave.StatusCancelled
	request.DecidedBy = decidedBy
	request.DecidedAt = &decidedAt
	return request, nil
}

// Delete implements LeaveService.
//
// Owners may delete their own requests except approved ones, which only
// a manager can delete. Deleting an approved or cancellation-pending
// request also reverses its attendance fallout.
func (l *LeaveServiceImpl) Delete(ctx context.Context, callerID string, callerRole worker.Role, requestID string) error {
	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return err
	}

	if callerRole != worker.RoleManager {
		if request.WorkerID != callerID {
			return leave.ErrNotRequestOwner
		}
		if request.Status == leave.StatusApproved || request.Status == leave.StatusCancellationPending {
			return leave.ErrOwnerDeleteApproved
		}
	}

	if request.Status != leave.StatusApproved && request.Status != leave.StatusCancellationPending {
		return l.LeaveRequestRepository.Delete(ctx, request.ID)
	}

	subject, err := l.WorkerRepository.GetByID(ctx, request.WorkerID)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := l.LeaveRequestRepository.Delete(txCtx, request.ID); err != nil {
			return err
		}

		plan := reconcile.LeaveReversal(subject.ID, subject.Name, request.StartDate, request.EndDate)
		return l.applier.Apply(txCtx, plan)
	})
}

// Get implements LeaveService.
func (l *LeaveServiceImpl) Get(ctx context.Context, callerID string, callerRole worker.Role, requestID string) (leave.Request, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return leave.Request{}, err
	}

	if callerRole != worker.RoleManager && request.WorkerID != callerID {
		return leave.Request{}, leave.ErrNotRequestOwner
	}

	return request, nil
}

// List implements LeaveService.
func (l *LeaveServiceImpl) List(ctx context.Context, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	return l.LeaveRequestRepository.List(ctx, filter)
}

// ListMy implements LeaveService.
func (l *LeaveServiceImpl) ListMy(ctx context.Context, workerID string, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	filter.WorkerID = &workerID
	return l.LeaveRequestRepository.List(ctx, filter)
}
