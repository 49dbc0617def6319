package leave

import (
	"time"

	"github.com/depotworks/workforce-backend-go/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	// WorkerID is filled from the caller's token for worker-initiated
	// requests; managers may submit on another worker's behalf.
	WorkerID  string `json:"worker_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Type      string `json:"leave_type"`
	Reason    string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && endDate.Before(startDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	ID        string
	Status    Status
	DecidedBy *string
	DecidedAt *time.Time
}

type RequestFilter struct {
	WorkerID   *string
	WorkerName *string
	Status     *string
	Type       *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

type RequestResponse struct {
	ID          string  `json:"leave_request_id"`
	WorkerID    string  `json:"worker_id"`
	WorkerName  *string `json:"worker_name,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Type        string  `json:"leave_type"`
	Reason      string  `json:"reason,omitempty"`
	Status      Status  `json:"status"`
	DecidedBy   *string `json:"decided_by,omitempty"`
	SubmittedAt string  `json:"submitted_at"`
}

func ToResponse(req Request) RequestResponse {
	return RequestResponse{
		ID:          req.ID,
		WorkerID:    req.WorkerID,
		WorkerName:  req.WorkerName,
		StartDate:   req.StartDate.Format("2006-01-02"),
		EndDate:     req.EndDate.Format("2006-01-02"),
		Type:        req.Type,
		Reason:      req.Reason,
		Status:      req.Status,
		DecidedBy:   req.DecidedBy,
		SubmittedAt: req.SubmittedAt.Format(time.RFC3339),
	}
}
