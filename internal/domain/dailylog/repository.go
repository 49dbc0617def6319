package dailylog

import (
	"context"
	"time"
)

type DailyLogRepository interface {
	Create(ctx context.Context, log Log) (Log, error)
	GetByID(ctx context.Context, id string) (Log, error)

	// GetByDateAndPrefix returns the first row for date whose content
	// starts with prefix, or nil when none exists.
	GetByDateAndPrefix(ctx context.Context, date time.Time, prefix string) (*Log, error)

	// GetByDateAndContent returns the row with exactly this content on
	// date, or nil. Used for the duplicate-note check.
	GetByDateAndContent(ctx context.Context, date time.Time, content string) (*Log, error)

	UpdateContent(ctx context.Context, id string, content string) error
	Delete(ctx context.Context, id string) error
	ListByDate(ctx context.Context, date time.Time) ([]Log, error)
}
