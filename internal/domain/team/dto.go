package team

import "github.com/depotworks/workforce-backend-go/internal/pkg/validator"

type CreateTeamRequest struct {
	Name string `json:"team_name"`
	Kind string `json:"team_kind,omitempty"`
}

func (r *CreateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_name",
			Message: "team_name is required",
		})
	}
	if r.Kind != "" && !Kind(r.Kind).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "team_kind",
			Message: "team_kind must be one of: palette, cleaning, general",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateTeamRequest struct {
	ID   string  `json:"team_id"`
	Name *string `json:"team_name,omitempty"`
	Kind *string `json:"team_kind,omitempty"`
}

func (r *UpdateTeamRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_id",
			Message: "team_id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "team_name",
			Message: "team_name must not be empty",
		})
	}
	if r.Kind != nil && !Kind(*r.Kind).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "team_kind",
			Message: "team_kind must be one of: palette, cleaning, general",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
