package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/leave"
	"github.com/depotworks/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, worker_id, start_date, end_date, leave_type, reason, status, submitted_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7
		)
		RETURNING id, worker_id, start_date, end_date, leave_type, reason, status,
				  decided_by, decided_at, submitted_at, created_at, updated_at
	`

	var created leave.Request
	err := q.QueryRow(ctx, query,
		request.WorkerID,
		request.StartDate,
		request.EndDate,
		request.Type,
		request.Reason,
		request.Status,
		request.SubmittedAt,
	).Scan(
		&created.ID,
		&created.WorkerID,
		&created.StartDate,
		&created.EndDate,
		&created.Type,
		&created.Reason,
		&created.Status,
		&created.DecidedBy,
		&created.DecidedAt,
		&created.SubmittedAt,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return leave.Request{}, err
	}

	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.worker_id, lr.start_date, lr.end_date, lr.leave_type, lr.reason, lr.status,
			   lr.decided_by, lr.decided_at, lr.submitted_at, lr.created_at, lr.updated_at,
			   w.worker_name
		FROM leave_requests lr
		INNER JOIN workers w ON lr.worker_id = w.id
		WHERE lr.id = $1
	`

	var found leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.WorkerID,
		&found.StartDate,
		&found.EndDate,
		&found.Type,
		&found.Reason,
		&found.Status,
		&found.DecidedBy,
		&found.DecidedAt,
		&found.SubmittedAt,
		&found.CreatedAt,
		&found.UpdatedAt,
		&found.WorkerName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrLeaveNotFound
		}
		return leave.Request{}, err
	}

	return found, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, decided_by = $2, decided_at = $3, updated_at = NOW()
		WHERE id = $4
	`
	commandTag, err := q.Exec(ctx, query, req.Status, req.DecidedBy, req.DecidedAt, req.ID)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

// Delete implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM leave_requests WHERE id = $1`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.RequestFilter) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil && *filter.WorkerID != "" {
		conditions = append(conditions, fmt.Sprintf("lr.worker_id = $%d", argIdx))
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.WorkerName != nil && *filter.WorkerName != "" {
		conditions = append(conditions, fmt.Sprintf("w.worker_name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.WorkerName+"%")
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Type != nil && *filter.Type != "" {
		conditions = append(conditions, fmt.Sprintf("lr.leave_type = $%d", argIdx))
		args = append(args, *filter.Type)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("lr.end_date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("lr.start_date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `
		SELECT COUNT(*)
		FROM leave_requests lr
		INNER JOIN workers w ON lr.worker_id = w.id
		WHERE ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortBy := "lr.submitted_at"
	switch filter.SortBy {
	case "start_date":
		sortBy = "lr.start_date"
	case "status":
		sortBy = "lr.status"
	case "worker_name":
		sortBy = "w.worker_name"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT lr.id, lr.worker_id, lr.start_date, lr.end_date, lr.leave_type, lr.reason, lr.status,
			   lr.decided_by, lr.decided_at, lr.submitted_at, lr.created_at, lr.updated_at,
			   w.worker_name
		FROM leave_requests lr
		INNER JOIN workers w ON lr.worker_id = w.id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, where, sortBy, sortOrder, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var lr leave.Request
		err := rows.Scan(
			&lr.ID,
			&lr.WorkerID,
			&lr.StartDate,
			&lr.EndDate,
			&lr.Type,
			&lr.Reason,
			&lr.Status,
			&lr.DecidedBy,
			&lr.DecidedAt,
			&lr.SubmittedAt,
			&lr.CreatedAt,
			&lr.UpdatedAt,
			&lr.WorkerName,
		)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, lr)
	}

	return requests, total, nil
}

// ListWorkersOnApprovedLeave implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListWorkersOnApprovedLeave(ctx context.Context, date time.Time) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT worker_id
		FROM leave_requests
		WHERE status = $1 AND start_date <= $2 AND end_date >= $2
	`

	rows, err := q.Query(ctx, query, leave.StatusApproved, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workerIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		workerIDs = append(workerIDs, id)
	}

	return workerIDs, nil
}
