package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/depotworks/workforce-backend-go/internal/domain/attendance"
	"github.com/depotworks/workforce-backend-go/internal/domain/worker"
	"github.com/depotworks/workforce-backend-go/internal/handler/http/response"
	attendanceService "github.com/depotworks/workforce-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	Set(w http.ResponseWriter, r *http.Request)
	BatchSet(w http.ResponseWriter, r *http.Request)
	BulkSet(w http.ResponseWriter, r *http.Request)
	AutoAdvance(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendanceService.AttendanceService
}

func NewAttendanceHandler(service attendanceService.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: service}
}

// Set implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Set(w http.ResponseWriter, r *http.Request) {
	var req attendance.SetAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := a.attendanceService.Set(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendance.ToResponse(record))
}

// BatchSet implements AttendanceHandler.
func (a *AttendanceHandlerImpl) BatchSet(w http.ResponseWriter, r *http.Request) {
	var req attendance.BatchSetAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Batch set attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.attendanceService.BatchSet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// BulkSet implements AttendanceHandler.
func (a *AttendanceHandlerImpl) BulkSet(w http.ResponseWriter, r *http.Request) {
	var req attendance.BulkSetAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Bulk set attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	written, err := a.attendanceService.BulkSet(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bulk attendance applied", map[string]int{
		"records_written": written,
	})
}

// AutoAdvance implements AttendanceHandler. Manual trigger for the
// hourly sweep; before the cutoff hour it advances nothing.
func (a *AttendanceHandlerImpl) AutoAdvance(w http.ResponseWriter, r *http.Request) {
	advanced, err := a.attendanceService.AutoAdvance(r.Context(), time.Now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Scheduled records advanced", map[string]int64{
		"records_advanced": advanced,
	})
}

// List implements AttendanceHandler.
func (a *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := attendance.AttendanceFilter{
		SortBy:    query.Get("sort_by"),
		SortOrder: query.Get("sort_order"),
	}
	if v := query.Get("worker_id"); v != "" {
		filter.WorkerID = &v
	}
	if v := query.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := query.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := query.Get("status"); v != "" {
		filter.Status = &v
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	// Workers only see their own records.
	workerID, role, ok := caller(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	if role != worker.RoleManager {
		filter.WorkerID = &workerID
	}

	records, total, err := a.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, attendance.ToResponse(rec))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
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

// parseDateParam parses a YYYY-MM-DD query or URL parameter.
func parseDateParam(value string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", value)
	return date, err == nil
}
