package postgresql

import (
	"context"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/roster"
	"github.com/depotworks/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type rosterRepositoryImpl struct {
	db *database.DB
}

func NewRosterRepository(db *database.DB) roster.RosterRepository {
	return &rosterRepositoryImpl{db: db}
}

// UpsertRoster implements roster.RosterRepository.
func (r *rosterRepositoryImpl) UpsertRoster(ctx context.Context, date time.Time, paletteTeamID, cleaningTeamID *string) (roster.Roster, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rosters (id, date, palette_team_id, cleaning_team_id)
		VALUES (uuidv7(), $1, $2, $3)
		ON CONFLICT (date) DO UPDATE SET
			palette_team_id = EXCLUDED.palette_team_id,
			cleaning_team_id = EXCLUDED.cleaning_team_id,
			updated_at = NOW()
		RETURNING id, date, palette_team_id, cleaning_team_id, created_at, updated_at
	`

	var saved roster.Roster
	err := q.QueryRow(ctx, query, date, paletteTeamID, cleaningTeamID).Scan(
		&saved.ID,
		&saved.Date,
		&saved.PaletteTeamID,
		&saved.CleaningTeamID,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return roster.Roster{}, err
	}

	return saved, nil
}

// GetByDate implements roster.RosterRepository.
func (r *rosterRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (*roster.Roster, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, palette_team_id, cleaning_team_id, created_at, updated_at
		FROM rosters
		WHERE date = $1
	`

	var found roster.Roster
	err := q.QueryRow(ctx, query, date).Scan(
		&found.ID,
		&found.Date,
		&found.PaletteTeamID,
		&found.CleaningTeamID,
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

// ListAssignments implements roster.RosterRepository.
func (r *rosterRepositoryImpl) ListAssignments(ctx context.Context, rosterID string) ([]roster.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ra.id, ra.roster_id, ra.worker_id, ra.position, ra.team, w.worker_name
		FROM roster_assignments ra
		INNER JOIN workers w ON ra.worker_id = w.id
		WHERE ra.roster_id = $1
		ORDER BY w.worker_name ASC
	`

	rows, err := q.Query(ctx, query, rosterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []roster.Assignment
	for rows.Next() {
		var a roster.Assignment
		err := rows.Scan(
			&a.ID,
			&a.RosterID,
			&a.WorkerID,
			&a.Position,
			&a.Team,
			&a.WorkerName,
		)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// ReplaceAssignments implements roster.RosterRepository.
func (r *rosterRepositoryImpl) ReplaceAssignments(ctx context.Context, rosterID string, assignments []roster.Assignment) error {
	q := GetQuerier(ctx, r.db)

	deleteQuery := `DELETE FROM roster_assignments WHERE roster_id = $1`
	if _, err := q.Exec(ctx, deleteQuery, rosterID); err != nil {
		return err
	}

	insertQuery := `
		INSERT INTO roster_assignments (id, roster_id, worker_id, position, team)
		VALUES (uuidv7(), $1, $2, $3, $4)
		ON CONFLICT (roster_id, worker_id) DO NOTHING
	`
	for _, a := range assignments {
		if _, err := q.Exec(ctx, insertQuery, rosterID, a.WorkerID, a.Position, a.Team); err != nil {
			return err
		}
	}

	return nil
}

// DeleteAssignmentByWorkerAndDate implements roster.RosterRepository.
func (r *rosterRepositoryImpl) DeleteAssignmentByWorkerAndDate(ctx context.Context, workerID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM roster_assignments ra
		USING rosters ro
		WHERE ra.roster_id = ro.id AND ro.date = $1 AND ra.worker_id = $2
	`
	_, err := q.Exec(ctx, query, date, workerID)
	return err
}
