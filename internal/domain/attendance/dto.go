package attendance

import (
	"github.com/depotworks/workforce-backend-go/internal/domain/worker"
	"github.com/depotworks/workforce-backend-go/internal/pkg/validator"
)

type SetAttendanceRequest struct {
	WorkerID string `json:"worker_id"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	// Hours arrive as free-form strings; non-numeric values fall back to
	// the defaults (8 work, 0 overtime) instead of failing validation.
	WorkHours     *string `json:"work_hours,omitempty"`
	OvertimeHours *string `json:"overtime_hours,omitempty"`
}

func (r *SetAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

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

	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: scheduled, present, absent, late, early_leave, off_day, or empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BatchSetAttendanceRequest struct {
	Records []SetAttendanceRequest `json:"records"`
}

func (r *BatchSetAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "records",
			Message: "records must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BatchItemError reports one failed record of a batch write.
type BatchItemError struct {
	WorkerID string `json:"worker_id"`
	Date     string `json:"date"`
	Message  string `json:"message"`
}

// BatchSetResult carries per-item counters; a batch never aborts as a
// whole on individual failures.
type BatchSetResult struct {
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Errors    []BatchItemError `json:"errors,omitempty"`
}

type BulkSetAttendanceRequest struct {
	Role          string  `json:"role,omitempty"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Status        string  `json:"status"`
	WorkHours     *string `json:"work_hours,omitempty"`
	OvertimeHours *string `json:"overtime_hours,omitempty"`
}

func (r *BulkSetAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be a valid attendance status or empty",
		})
	}

	if r.Role != "" && !worker.Role(r.Role).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: worker, manager",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	WorkerID  *string
	StartDate *string
	EndDate   *string
	Status    *string
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

type RecordResponse struct {
	ID            string  `json:"attendance_id"`
	WorkerID      string  `json:"worker_id"`
	WorkerName    *string `json:"worker_name,omitempty"`
	Date          string  `json:"date"`
	Status        Status  `json:"status"`
	WorkHours     float64 `json:"work_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

func ToResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:            rec.ID,
		WorkerID:      rec.WorkerID,
		WorkerName:    rec.WorkerName,
		Date:          rec.Date.Format("2006-01-02"),
		Status:        rec.Status,
		WorkHours:     rec.WorkHours,
		OvertimeHours: rec.OvertimeHours,
	}
}
