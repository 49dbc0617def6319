package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/depotworks/workforce-backend-go/internal/domain/team"
	"github.com/depotworks/workforce-backend-go/internal/domain/worker"
	"github.com/depotworks/workforce-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

// MasterService manages roster reference data and worker accounts.
type MasterService interface {
	CreateTeam(ctx context.Context, req team.CreateTeamRequest) (team.Team, error)
	ListTeams(ctx context.Context, kind *team.Kind) ([]team.Team, error)
	UpdateTeam(ctx context.Context, req team.UpdateTeamRequest) (team.Team, error)
	DeleteTeam(ctx context.Context, id string) error

	ListWorkers(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, int64, error)
	GetWorker(ctx context.Context, id string) (worker.Worker, error)
	UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.Worker, error)
	ApproveWorker(ctx context.Context, id string) (worker.Worker, error)
}

type MasterServiceImpl struct {
	db *database.DB
	team.TeamRepository
	worker.WorkerRepository
}

func NewMasterService(db *database.DB, teamRepository team.TeamRepository, workerRepository worker.WorkerRepository) MasterService {
	return &MasterServiceImpl{
		db:               db,
		TeamRepository:   teamRepository,
		WorkerRepository: workerRepository,
	}
}

// CreateTeam implements MasterService.
func (m *MasterServiceImpl) CreateTeam(ctx context.Context, req team.CreateTeamRequest) (team.Team, error) {
	if err := req.Validate(); err != nil {
		return team.Team{}, err
	}

	kind := team.KindGeneral
	if req.Kind != "" {
		kind = team.Kind(req.Kind)
	}

	created, err := m.TeamRepository.Create(ctx, team.Team{
		Name: req.Name,
		Kind: kind,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return team.Team{}, team.ErrTeamNameExists
		}
		return team.Team{}, fmt.Errorf("failed to create team: %w", err)
	}

	return created, nil
}

// ListTeams implements MasterService.
func (m *MasterServiceImpl) ListTeams(ctx context.Context, kind *team.Kind) ([]team.Team, error) {
	teams, err := m.TeamRepository.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// UpdateTeam implements MasterService.
func (m *MasterServiceImpl) UpdateTeam(ctx context.Context, req team.UpdateTeamRequest) (team.Team, error) {
	if err := req.Validate(); err != nil {
		return team.Team{}, err
	}

	if err := m.TeamRepository.Update(ctx, req); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return team.Team{}, team.ErrTeamNameExists
		}
		return team.Team{}, err
	}

	return m.TeamRepository.GetByID(ctx, req.ID)
}

// DeleteTeam implements MasterService.
func (m *MasterServiceImpl) DeleteTeam(ctx context.Context, id string) error {
	return m.TeamRepository.Delete(ctx, id)
}

// ListWorkers implements MasterService.
func (m *MasterServiceImpl) ListWorkers(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, int64, error) {
	return m.WorkerRepository.List(ctx, filter)
}

// GetWorker implements MasterService.
func (m *MasterServiceImpl) GetWorker(ctx context.Context, id string) (worker.Worker, error) {
	return m.WorkerRepository.GetByID(ctx, id)
}

// UpdateWorker implements MasterService.
func (m *MasterServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.Worker, error) {
	if err := req.Validate(); err != nil {
		return worker.Worker{}, err
	}

	if err := m.WorkerRepository.Update(ctx, req); err != nil {
		return worker.Worker{}, err
	}

	return m.WorkerRepository.GetByID(ctx, req.ID)
}

// ApproveWorker implements MasterService.
func (m *MasterServiceImpl) ApproveWorker(ctx context.Context, id string) (worker.Worker, error) {
	approved := true
	req := worker.UpdateWorkerRequest{
		ID:         id,
		IsApproved: &approved,
	}
	if err := m.WorkerRepository.Update(ctx, req); err != nil {
		return worker.Worker{}, err
	}

	return m.WorkerRepository.GetByID(ctx, id)
}
