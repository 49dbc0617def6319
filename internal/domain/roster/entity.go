package roster

import "time"

// Roster is the assignment board for one calendar date. It owns zero or
// more assignments plus the palette and cleaning team references.
type Roster struct {
	ID             string
	Date           time.Time
	PaletteTeamID  *string
	CleaningTeamID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Assignment places one worker on a roster. (RosterID, WorkerID) is
// unique; the row is deleted when the worker becomes absent for the date.
type Assignment struct {
	ID       string
	RosterID string
	WorkerID string
	Position string
	Team     string

	// DTO
	WorkerName *string
}
