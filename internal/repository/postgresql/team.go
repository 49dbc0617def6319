package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/depotworks/workforce-backend-go/internal/domain/team"
	"github.com/depotworks/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type teamRepositoryImpl struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) team.TeamRepository {
	return &teamRepositoryImpl{db: db}
}

// Create implements team.TeamRepository.
func (r *teamRepositoryImpl) Create(ctx context.Context, t team.Team) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teams (id, team_name, team_kind)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, team_name, team_kind, created_at, updated_at
	`

	var created team.Team
	err := q.QueryRow(ctx, query, t.Name, t.Kind).Scan(
		&created.ID,
		&created.Name,
		&created.Kind,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return team.Team{}, err
	}

	return created, nil
}

// GetByID implements team.TeamRepository.
func (r *teamRepositoryImpl) GetByID(ctx context.Context, id string) (team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, team_name, team_kind, created_at, updated_at
		FROM teams
		WHERE id = $1
	`

	var found team.Team
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Name,
		&found.Kind,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return team.Team{}, team.ErrTeamNotFound
		}
		return team.Team{}, err
	}

	return found, nil
}

// List implements team.TeamRepository.
func (r *teamRepositoryImpl) List(ctx context.Context, kind *team.Kind) ([]team.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, team_name, team_kind, created_at, updated_at FROM teams`
	args := []interface{}{}
	if kind != nil {
		query += ` WHERE team_kind = $1`
		args = append(args, *kind)
	}
	query += ` ORDER BY team_name ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []team.Team
	for rows.Next() {
		var t team.Team
		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Kind,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}

	return teams, nil
}

// Update implements team.TeamRepository.
func (r *teamRepositoryImpl) Update(ctx context.Context, req team.UpdateTeamRequest) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		sets = append(sets, fmt.Sprintf("team_name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Kind != nil {
		sets = append(sets, fmt.Sprintf("team_kind = $%d", argIdx))
		args = append(args, *req.Kind)
		argIdx++
	}

	query := fmt.Sprintf(`UPDATE teams SET %s WHERE id = $%d`, strings.Join(sets, ", "), argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return team.ErrTeamNotFound
	}
	return nil
}

// Delete implements team.TeamRepository.
func (r *teamRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM teams WHERE id = $1`
	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return team.ErrTeamNotFound
	}
	return nil
}
