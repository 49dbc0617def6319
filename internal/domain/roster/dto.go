package roster

import "github.com/depotworks/workforce-backend-go/internal/pkg/validator"

type AssignmentInput struct {
	WorkerID string `json:"worker_id"`
	Position string `json:"position,omitempty"`
	Team     string `json:"team,omitempty"`
}

type SetRosterRequest struct {
	Date           string            `json:"date"`
	Assignments    []AssignmentInput `json:"assignments"`
	PaletteTeamID  *string           `json:"palette_team_id,omitempty"`
	CleaningTeamID *string           `json:"cleaning_team_id,omitempty"`
}

func (r *SetRosterRequest) Validate() error {
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

	for i, a := range r.Assignments {
		if validator.IsEmpty(a.WorkerID) {
			errs = append(errs, validator.ValidationError{
				Field:   "assignments",
				Message: "assignments[" + validator.Itoa(i) + "].worker_id is required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CopyRosterRequest struct {
	SourceDate   string `json:"source_date"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	SkipHolidays bool   `json:"skip_holidays,omitempty"`
}

func (r *CopyRosterRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.SourceDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "source_date",
			Message: "source_date must be in YYYY-MM-DD format",
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

type AssignmentResponse struct {
	WorkerID   string  `json:"worker_id"`
	WorkerName *string `json:"worker_name,omitempty"`
	Position   string  `json:"position,omitempty"`
	Team       string  `json:"team,omitempty"`
}

type RosterResponse struct {
	ID             string               `json:"roster_id"`
	Date           string               `json:"date"`
	PaletteTeamID  *string              `json:"palette_team_id,omitempty"`
	CleaningTeamID *string              `json:"cleaning_team_id,omitempty"`
	Assignments    []AssignmentResponse `json:"assignments"`
}

func ToResponse(r Roster, assignments []Assignment) RosterResponse {
	resp := RosterResponse{
		ID:             r.ID,
		Date:           r.Date.Format("2006-01-02"),
		PaletteTeamID:  r.PaletteTeamID,
		CleaningTeamID: r.CleaningTeamID,
		Assignments:    make([]AssignmentResponse, 0, len(assignments)),
	}
	for _, a := range assignments {
		resp.Assignments = append(resp.Assignments, AssignmentResponse{
			WorkerID:   a.WorkerID,
			WorkerName: a.WorkerName,
			Position:   a.Position,
			Team:       a.Team,
		})
	}
	return resp
}
