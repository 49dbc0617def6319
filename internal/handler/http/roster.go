package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/depotworks/workforce-backend-go/internal/domain/roster"
	"github.com/depotworks/workforce-backend-go/internal/handler/http/response"
	rosterService "github.com/depotworks/workforce-backend-go/internal/service/roster"
	"github.com/go-chi/chi/v5"
)

type RosterHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Set(w http.ResponseWriter, r *http.Request)
	CopyRange(w http.ResponseWriter, r *http.Request)
}

type RosterHandlerImpl struct {
	rosterService rosterService.RosterService
}

func NewRosterHandler(service rosterService.RosterService) RosterHandler {
	return &RosterHandlerImpl{rosterService: service}
}

// Get implements RosterHandler.
func (h *RosterHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateParam(chi.URLParam(r, "date"))
	if !ok {
		response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
		return
	}

	board, assignments, err := h.rosterService.Get(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, roster.ToResponse(board, assignments))
}

// Set implements RosterHandler.
func (h *RosterHandlerImpl) Set(w http.ResponseWriter, r *http.Request) {
	var req roster.SetRosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set roster decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	board, assignments, err := h.rosterService.Set(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster updated", roster.ToResponse(board, assignments))
}

// CopyRange implements RosterHandler.
func (h *RosterHandlerImpl) CopyRange(w http.ResponseWriter, r *http.Request) {
	var req roster.CopyRosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Copy roster decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	copied, err := h.rosterService.CopyRange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Roster copied", map[string]int{
		"dates_copied": copied,
	})
}
