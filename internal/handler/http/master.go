package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/depotworks/workforce-backend-go/internal/domain/team"
	"github.com/depotworks/workforce-backend-go/internal/domain/worker"
	"github.com/depotworks/workforce-backend-go/internal/handler/http/response"
	masterService "github.com/depotworks/workforce-backend-go/internal/service/master"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	CreateTeam(w http.ResponseWriter, r *http.Request)
	ListTeams(w http.ResponseWriter, r *http.Request)
	UpdateTeam(w http.ResponseWriter, r *http.Request)
	DeleteTeam(w http.ResponseWriter, r *http.Request)

	Me(w http.ResponseWriter, r *http.Request)
	ListWorkers(w http.ResponseWriter, r *http.Request)
	GetWorker(w http.ResponseWriter, r *http.Request)
	UpdateWorker(w http.ResponseWriter, r *http.Request)
	ApproveWorker(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService masterService.MasterService
}

func NewMasterHandler(service masterService.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: service}
}

// CreateTeam implements MasterHandler.
func (m *MasterHandlerImpl) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req team.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create team decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := m.masterService.CreateTeam(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Team created", created)
}

// ListTeams implements MasterHandler.
func (m *MasterHandlerImpl) ListTeams(w http.ResponseWriter, r *http.Request) {
	var kind *team.Kind
	if v := r.URL.Query().Get("team_kind"); v != "" {
		k := team.Kind(v)
		if !k.Valid() {
			response.BadRequest(w, "team_kind must be one of: palette, cleaning, general", nil)
			return
		}
		kind = &k
	}

	teams, err := m.masterService.ListTeams(r.Context(), kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, teams)
}

// UpdateTeam implements MasterHandler.
func (m *MasterHandlerImpl) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req team.UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update team decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := m.masterService.UpdateTeam(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team updated", updated)
}

// DeleteTeam implements MasterHandler.
func (m *MasterHandlerImpl) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := m.masterService.DeleteTeam(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Team deleted", nil)
}

// Me implements MasterHandler. Returns the calling worker's own record.
func (m *MasterHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := caller(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	found, err := m.masterService.GetWorker(r.Context(), callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, worker.ToResponse(found))
}

// ListWorkers implements MasterHandler.
func (m *MasterHandlerImpl) ListWorkers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := worker.WorkerFilter{
		SortBy:    query.Get("sort_by"),
		SortOrder: query.Get("sort_order"),
	}
	if v := query.Get("worker_name"); v != "" {
		filter.Name = &v
	}
	if v := query.Get("role"); v != "" {
		filter.Role = &v
	}
	if v := query.Get("is_approved"); v != "" {
		approved := v == "true"
		filter.IsApproved = &approved
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	workers, total, err := m.masterService.ListWorkers(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]worker.WorkerResponse, 0, len(workers))
	for _, wk := range workers {
		items = append(items, worker.ToResponse(wk))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	response.SuccessWithMeta(w, items, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

// GetWorker implements MasterHandler.
func (m *MasterHandlerImpl) GetWorker(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	found, err := m.masterService.GetWorker(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, worker.ToResponse(found))
}

// UpdateWorker implements MasterHandler.
func (m *MasterHandlerImpl) UpdateWorker(w http.ResponseWriter, r *http.Request) {
	var req worker.UpdateWorkerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update worker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := m.masterService.UpdateWorker(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker updated", worker.ToResponse(updated))
}

// ApproveWorker implements MasterHandler.
func (m *MasterHandlerImpl) ApproveWorker(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	approved, err := m.masterService.ApproveWorker(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker approved", worker.ToResponse(approved))
}
