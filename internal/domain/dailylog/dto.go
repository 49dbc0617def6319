package dailylog

import (
	"time"

	"github.com/depotworks/workforce-backend-go/internal/pkg/validator"
)

type CreateNoteRequest struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

func (r *CreateNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateNoteRequest struct {
	ID      string `json:"daily_log_id"`
	Content string `json:"content"`
}

func (r *UpdateNoteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_log_id",
			Message: "daily_log_id is required",
		})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LogResponse struct {
	ID         string  `json:"daily_log_id"`
	Date       string  `json:"date"`
	Content    string  `json:"content"`
	AuthorID   *string `json:"author_id,omitempty"`
	AuthorName *string `json:"author_name,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

func ToResponse(l Log) LogResponse {
	return LogResponse{
		ID:         l.ID,
		Date:       l.Date.Format("2006-01-02"),
		Content:    l.Content,
		AuthorID:   l.AuthorID,
		AuthorName: l.AuthorName,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
	}
}
