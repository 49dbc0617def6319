package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/attendance"
	"github.com/depotworks/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (id, worker_id, date, status, work_hours, overtime_hours)
		VALUES (uuidv7(), $1, $2, $3, $4, $5)
		ON CONFLICT (worker_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			work_hours = EXCLUDED.work_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			updated_at = NOW()
		RETURNING id, worker_id, date, status, work_hours, overtime_hours, created_at, updated_at
	`

	var saved attendance.Record
	err := q.QueryRow(ctx, query,
		record.WorkerID,
		record.Date,
		record.Status,
		record.WorkHours,
		record.OvertimeHours,
	).Scan(
		&saved.ID,
		&saved.WorkerID,
		&saved.Date,
		&saved.Status,
		&saved.WorkHours,
		&saved.OvertimeHours,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return attendance.Record{}, err
	}

	return saved, nil
}

// GetByWorkerAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, date, status, work_hours, overtime_hours, created_at, updated_at
		FROM attendance_records
		WHERE worker_id = $1 AND date = $2
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, workerID, date).Scan(
		&rec.ID,
		&rec.WorkerID,
		&rec.Date,
		&rec.Status,
		&rec.WorkHours,
		&rec.OvertimeHours,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &rec, nil
}

// DeleteByWorkerDateStatuses implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteByWorkerDateStatuses(ctx context.Context, workerID string, date time.Time, statuses []attendance.Status) error {
	if len(statuses) == 0 {
		return nil
	}
	q := GetQuerier(ctx, r.db)

	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}

	query := `
		DELETE FROM attendance_records
		WHERE worker_id = $1 AND date = $2 AND status = ANY($3)
	`
	_, err := q.Exec(ctx, query, workerID, date, values)
	return err
}

// AdvanceScheduled implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) AdvanceScheduled(ctx context.Context, through time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND date <= $3
	`
	commandTag, err := q.Exec(ctx, query, attendance.StatusPresent, attendance.StatusScheduled, through)
	if err != nil {
		return 0, err
	}
	return commandTag.RowsAffected(), nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.WorkerID != nil && *filter.WorkerID != "" {
		conditions = append(conditions, fmt.Sprintf("ar.worker_id = $%d", argIdx))
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("ar.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("ar.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("ar.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := `SELECT COUNT(*) FROM attendance_records ar WHERE ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortBy := "ar.date"
	switch filter.SortBy {
	case "date":
		sortBy = "ar.date"
	case "status":
		sortBy = "ar.status"
	case "worker_name":
		sortBy = "w.worker_name"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT ar.id, ar.worker_id, ar.date, ar.status, ar.work_hours, ar.overtime_hours,
			   ar.created_at, ar.updated_at, w.worker_name
		FROM attendance_records ar
		INNER JOIN workers w ON ar.worker_id = w.id
		WHERE %s
		ORDER BY %s %s, w.worker_name ASC
		LIMIT $%d OFFSET $%d
	`, where, sortBy, sortOrder, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID,
			&rec.WorkerID,
			&rec.Date,
			&rec.Status,
			&rec.WorkHours,
			&rec.OvertimeHours,
			&rec.CreatedAt,
			&rec.UpdatedAt,
			&rec.WorkerName,
		)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}

	return records, total, nil
}
