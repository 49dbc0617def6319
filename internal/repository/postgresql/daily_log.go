package postgresql

import (
	"context"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/dailylog"
	"github.com/depotworks/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type dailyLogRepositoryImpl struct {
	db *database.DB
}

func NewDailyLogRepository(db *database.DB) dailylog.DailyLogRepository {
	return &dailyLogRepositoryImpl{db: db}
}

// Create implements dailylog.DailyLogRepository.
func (r *dailyLogRepositoryImpl) Create(ctx context.Context, log dailylog.Log) (dailylog.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_logs (id, date, content, author_id)
		VALUES (uuidv7(), $1, $2, $3)
		RETURNING id, date, content, author_id, created_at, updated_at
	`

	var created dailylog.Log
	err := q.QueryRow(ctx, query, log.Date, log.Content, log.AuthorID).Scan(
		&created.ID,
		&created.Date,
		&created.Content,
		&created.AuthorID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return dailylog.Log{}, err
	}

	return created, nil
}

// GetByID implements dailylog.DailyLogRepository.
func (r *dailyLogRepositoryImpl) GetByID(ctx context.Context, id string) (dailylog.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, content, author_id, created_at, updated_at
		FROM daily_logs
		WHERE id = $1
	`

	var found dailylog.Log
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Date,
		&found.Content,
		&found.AuthorID,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return dailylog.Log{}, dailylog.ErrLogNotFound
		}
		return dailylog.Log{}, err
	}

	return found, nil
}

// GetByDateAndPrefix implements dailylog.DailyLogRepository.
func (r *dailyLogRepositoryImpl) GetByDateAndPrefix(ctx context.Context, date time.Time, prefix string) (*dailylog.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, content, author_id, created_at, updated_at
		FROM daily_logs
		WHERE date = $1 AND content LIKE $2 || '%'
		ORDER BY created_at ASC
		LIMIT 1
	`

	var found dailylog.Log
	err := q.QueryRow(ctx, query, date, prefix).Scan(
		&found.ID,
		&found.Date,
		&found.Content,
		&found.AuthorID,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &found, nil
}

// GetByDateAndContent implements dailylog.DailyLogRepository.
func (r *dailyLogRepositoryImpl) GetByDateAndContent(ctx context.Context, date time.Time, content string) (*dailylog.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, content, author_id, created_at, updated_at
		FROM daily_logs
		WHERE date = $1 AND content = $2
		LIMIT 1
	`

	var found dailylog.Log
	err := q.QueryRow(ctx, query, date, content).Scan(
		&found.ID,
		&found.Date,
		&found.Content,
		&found.AuthorID,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &found, nil
}

// UpdateContent implements dailylog.DailyLogRepository.
func (r *dailyLogRepositoryImpl) UpdateContent(ctx context.Context, id string, content string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE daily_logs
		SET content = $1, updated_at = NOW()
		WHERE id = $2
	`
	commandTag, err := q.Exec(ctx, query, content, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return dailylog.ErrLogNotFound
	}
	return nil
}

// Delete implements dailylog.DailyLogRepository.
func (r *dailyLogRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM daily_logs WHERE id = $1`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return dailylog.ErrLogNotFound
	}
	return nil
}

// ListByDate implements dailylog.DailyLogRepository.
func (r *dailyLogRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]dailylog.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT dl.id, dl.date, dl.content, dl.author_id, dl.created_at, dl.updated_at, w.worker_name
		FROM daily_logs dl
		LEFT JOIN workers w ON dl.author_id = w.id
		WHERE dl.date = $1
		ORDER BY dl.created_at ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []dailylog.Log
	for rows.Next() {
		var l dailylog.Log
		err := rows.Scan(
			&l.ID,
			&l.Date,
			&l.Content,
			&l.AuthorID,
			&l.CreatedAt,
			&l.UpdatedAt,
			&l.AuthorName,
		)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, nil
}
