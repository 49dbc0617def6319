package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/depotworks/workforce-backend-go/internal/domain/dailylog"
	"github.com/depotworks/workforce-backend-go/internal/handler/http/response"
	dailylogService "github.com/depotworks/workforce-backend-go/internal/service/dailylog"
	"github.com/go-chi/chi/v5"
)

type DailyLogHandler interface {
	ListByDate(w http.ResponseWriter, r *http.Request)
	CreateNote(w http.ResponseWriter, r *http.Request)
	UpdateNote(w http.ResponseWriter, r *http.Request)
	DeleteNote(w http.ResponseWriter, r *http.Request)
}

type DailyLogHandlerImpl struct {
	logService dailylogService.LogService
}

func NewDailyLogHandler(service dailylogService.LogService) DailyLogHandler {
	return &DailyLogHandlerImpl{logService: service}
}

// ListByDate implements DailyLogHandler.
func (h *DailyLogHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateParam(chi.URLParam(r, "date"))
	if !ok {
		response.BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
		return
	}

	logs, err := h.logService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]dailylog.LogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, dailylog.ToResponse(l))
	}

	response.Success(w, items)
}

// CreateNote implements DailyLogHandler.
func (h *DailyLogHandlerImpl) CreateNote(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := caller(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dailylog.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create note decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.logService.CreateNote(r.Context(), callerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Daily log created", dailylog.ToResponse(created))
}

// UpdateNote implements DailyLogHandler.
func (h *DailyLogHandlerImpl) UpdateNote(w http.ResponseWriter, r *http.Request) {
	callerID, role, ok := caller(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req dailylog.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update note decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.logService.UpdateNote(r.Context(), callerID, role, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily log updated", dailylog.ToResponse(updated))
}

// DeleteNote implements DailyLogHandler.
func (h *DailyLogHandlerImpl) DeleteNote(w http.ResponseWriter, r *http.Request) {
	callerID, role, ok := caller(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	logID := chi.URLParam(r, "id")
	if err := h.logService.DeleteNote(r.Context(), callerID, role, logID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Daily log deleted", nil)
}
