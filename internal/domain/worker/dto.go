package worker

import "github.com/depotworks/workforce-backend-go/internal/pkg/validator"

type WorkerFilter struct {
	Name       *string
	Role       *string
	IsApproved *bool
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

type UpdateWorkerRequest struct {
	ID         string  `json:"worker_id"`
	Name       *string `json:"worker_name,omitempty"`
	Role       *string `json:"role,omitempty"`
	IsApproved *bool   `json:"is_approved,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_name",
			Message: "worker_name must not be empty",
		})
	}

	if r.Role != nil && !Role(*r.Role).Valid() {
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

type WorkerResponse struct {
	ID         string  `json:"worker_id"`
	Username   string  `json:"username"`
	Email      *string `json:"email,omitempty"`
	Name       string  `json:"worker_name"`
	Role       Role    `json:"role"`
	IsApproved bool    `json:"is_approved"`
	IsActive   bool    `json:"is_active"`
}

func ToResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:         w.ID,
		Username:   w.Username,
		Email:      w.Email,
		Name:       w.Name,
		Role:       w.Role,
		IsApproved: w.IsApproved,
		IsActive:   w.IsActive,
	}
}
