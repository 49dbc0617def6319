package dailylog

import (
	"context"
	"fmt"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/dailylog"
	"github.com/depotworks/workforce-backend-go/internal/domain/worker"
	"github.com/depotworks/workforce-backend-go/internal/pkg/database"
)

type LogService interface {
	// AddStatusEntry records workerName under the category's aggregate row
	// for date, creating the row when missing. Adding a name twice is a
	// no-op.
	AddStatusEntry(ctx context.Context, date time.Time, category dailylog.Category, workerName string) error

	// RemoveStatusEntry strips workerName from the category's aggregate
	// row for date. The row is deleted once its name list empties.
	// Missing rows and absent names are no-ops.
	RemoveStatusEntry(ctx context.Context, date time.Time, category dailylog.Category, workerName string) error

	CreateNote(ctx context.Context, authorID string, req dailylog.CreateNoteRequest) (dailylog.Log, error)
	UpdateNote(ctx context.Context, callerID string, callerRole worker.Role, req dailylog.UpdateNoteRequest) (dailylog.Log, error)
	DeleteNote(ctx context.Context, callerID string, callerRole worker.Role, logID string) error
	ListByDate(ctx context.Context, date time.Time) ([]dailylog.Log, error)
}

type LogServiceImpl struct {
	db *database.DB
	dailylog.DailyLogRepository
}

func NewLogService(db *database.DB, logRepository dailylog.DailyLogRepository) LogService {
	return &LogServiceImpl{
		db:                 db,
		DailyLogRepository: logRepository,
	}
}

// AddStatusEntry implements LogService.
func (s *LogServiceImpl) AddStatusEntry(ctx context.Context, date time.Time, category dailylog.Category, workerName string) error {
	row, err := s.DailyLogRepository.GetByDateAndPrefix(ctx, date, category.Prefix())
	if err != nil {
		return fmt.Errorf("failed to look up aggregate row: %w", err)
	}

	if row == nil {
		newLog := dailylog.Log{
			Date:    date,
			Content: dailylog.JoinAggregate(category, []string{workerName}),
		}
		if _, err := s.DailyLogRepository.Create(ctx, newLog); err != nil {
			return fmt.Errorf("failed to create aggregate row: %w", err)
		}
		return nil
	}

	names, ok := dailylog.SplitAggregate(category, row.Content)
	if !ok {
		// Prefix lookup and content disagree; leave the row alone.
		return nil
	}

	updated := dailylog.AddName(names, workerName)
	if len(updated) == len(names) {
		return nil
	}

	content := dailylog.JoinAggregate(category, updated)
	if err := s.DailyLogRepository.UpdateContent(ctx, row.ID, content); err != nil {
		return fmt.Errorf("failed to update aggregate row: %w", err)
	}
	return nil
}

// RemoveStatusEntry implements LogService.
func (s *LogServiceImpl) RemoveStatusEntry(ctx context.Context, date time.Time, category dailylog.Category, workerName string) error {
	row, err := s.DailyLogRepository.GetByDateAndPrefix(ctx, date, category.Prefix())
	if err != nil {
		return fmt.Errorf("failed to look up aggregate row: %w", err)
	}
	if row == nil {
		return nil
	}

	names, ok := dailylog.SplitAggregate(category, row.Content)
	if !ok {
		return nil
	}

	updated := dailylog.RemoveName(names, workerName)
	if len(updated) == len(names) {
		return nil
	}

	if len(updated) == 0 {
		if err := s.DailyLogRepository.Delete(ctx, row.ID); err != nil {
			return fmt.Errorf("failed to delete emptied aggregate row: %w", err)
		}
		return nil
	}

	content := dailylog.JoinAggregate(category, updated)
	if err := s.DailyLogRepository.UpdateContent(ctx, row.ID, content); err != nil {
		return fmt.Errorf("failed to update aggregate row: %w", err)
	}
	return nil
}

// CreateNote implements LogService.
func (s *LogServiceImpl) CreateNote(ctx context.Context, authorID string, req dailylog.CreateNoteRequest) (dailylog.Log, error) {
	if err := req.Validate(); err != nil {
		return dailylog.Log{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return dailylog.Log{}, fmt.Errorf("failed to parse date: %w", err)
	}

	// Resubmitting the same content for the same date hands back the
	// existing row instead of inserting a twin.
	existing, err := s.DailyLogRepository.GetByDateAndContent(ctx, date, req.Content)
	if err != nil {
		return dailylog.Log{}, fmt.Errorf("failed to check for duplicate log: %w", err)
	}
	if existing != nil {
		return *existing, nil
	}

	created, err := s.DailyLogRepository.Create(ctx, dailylog.Log{
		Date:     date,
		Content:  req.Content,
		AuthorID: &authorID,
	})
	if err != nil {
		return dailylog.Log{}, fmt.Errorf("failed to create daily log: %w", err)
	}

	return created, nil
}

// UpdateNote implements LogService.
func (s *LogServiceImpl) UpdateNote(ctx context.Context, callerID string, callerRole worker.Role, req dailylog.UpdateNoteRequest) (dailylog.Log, error) {
	if err := req.Validate(); err != nil {
		return dailylog.Log{}, err
	}

	log, err := s.DailyLogRepository.GetByID(ctx, req.ID)
	if err != nil {
		return dailylog.Log{}, err
	}

	if callerRole != worker.RoleManager {
		if log.AuthorID == nil || *log.AuthorID != callerID {
			return dailylog.Log{}, dailylog.ErrNotLogAuthor
		}
	}

	if err := s.DailyLogRepository.UpdateContent(ctx, log.ID, req.Content); err != nil {
		return dailylog.Log{}, fmt.Errorf("failed to update daily log: %w", err)
	}

	log.Content = req.Content
	return log, nil
}

// DeleteNote implements LogService.
func (s *LogServiceImpl) DeleteNote(ctx context.Context, callerID string, callerRole worker.Role, logID string) error {
	log, err := s.DailyLogRepository.GetByID(ctx, logID)
	if err != nil {
		return err
	}

	if callerRole != worker.RoleManager {
		if log.AuthorID == nil || *log.AuthorID != callerID {
			return dailylog.ErrNotLogAuthor
		}
	}

	if err := s.DailyLogRepository.Delete(ctx, log.ID); err != nil {
		return fmt.Errorf("failed to delete daily log: %w", err)
	}
	return nil
}

// ListByDate implements LogService.
func (s *LogServiceImpl) ListByDate(ctx context.Context, date time.Time) ([]dailylog.Log, error) {
	logs, err := s.DailyLogRepository.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}
	return logs, nil
}
