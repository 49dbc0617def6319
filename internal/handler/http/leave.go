package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/depotworks/workforce-backend-go/internal/domain/leave"
	"github.com/depotworks/workforce-backend-go/internal/handler/http/response"
	leaveService "github.com/depotworks/workforce-backend-go/internal/service/leave"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	ConfirmCancellation(w http.ResponseWriter, r *http.Request)
	DenyCancellation(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leaveService.LeaveService
}

func NewLeaveHandler(service leaveService.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: service}
}

// Submit implements LeaveHandler.
func (l *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	callerID, role, ok := caller(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	var req leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := l.leaveService.Submit(r.Context(), callerID, role, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", leave.ToResponse(created))
}

// Get implements LeaveHandler.
func (l *LeaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	callerID, role, ok := caller(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if requestID == "" {
		response.BadRequest(w, "Leave request ID is required", nil)
		return
	}

	request, err := l.leaveService.Get(r.Context(), callerID, role, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, leave.ToResponse(request))
}

func leaveFilterFromQuery(r *http.Request) leave.RequestFilter {
	query := r.URL.Query()

	filter := leave.RequestFilter{
		SortBy:    query.Get("sort_by"),
		SortOrder: query.Get("sort_order"),
	}
	if v := query.Get("worker_id"); v != "" {
		filter.WorkerID = &v
	}
	if v := query.Get("worker_name"); v != "" {
		filter.WorkerName = &v
	}
	if v := query.Get("status"); v != "" {
		filter.Status = &v
	}
	if v := query.Get("leave_type"); v != "" {
		filter.Type = &v
	}
	if v := query.Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := query.Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	return filter
}

func writeLeaveList(w http.ResponseWriter, requests []leave.Request, total int64, filter leave.RequestFilter) {
	items := make([]leave.RequestResponse, 0, len(requests))
	for _, req := range requests {
		items = append(items, leave.ToResponse(req))
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

// List implements LeaveHandler.
func (l *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := leaveFilterFromQuery(r)

	requests, total, err := l.leaveService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeLeaveList(w, requests, total, filter)
}

// ListMy implements LeaveHandler.
func (l *LeaveHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	callerID, _, ok := caller(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	filter := leaveFilterFromQuery(r)

	requests, total, err := l.leaveService.ListMy(r.Context(), callerID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeLeaveList(w, requests, total, filter)
}

// Approve implements LeaveHandler.
func (l *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	managerID, _, ok := caller(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	request, err := l.leaveService.Approve(r.Context(), managerID, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", leave.ToResponse(request))
}

// Reject implements LeaveHandler.
func (l *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	managerID, _, ok := caller(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	request, err := l.leaveService.Reject(r.Context(), managerID, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", leave.ToResponse(request))
}

// Cancel implements LeaveHandler.
func (l *LeaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	callerID, role, ok := caller(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	request, err := l.leaveService.Cancel(r.Context(), callerID, role, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Leave request cancelled"
	if request.Status == leave.StatusCancellationPending {
		message = "Cancellation awaiting manager confirmation"
	}
	response.SuccessWithMessage(w, message, leave.ToResponse(request))
}

// ConfirmCancellation implements LeaveHandler.
func (l *LeaveHandlerImpl) ConfirmCancellation(w http.ResponseWriter, r *http.Request) {
	managerID, _, ok := caller(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	request, err := l.leaveService.ConfirmCancellation(r.Context(), managerID, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cancellation confirmed", leave.ToResponse(request))
}

// DenyCancellation implements LeaveHandler.
func (l *LeaveHandlerImpl) DenyCancellation(w http.ResponseWriter, r *http.Request) {
	managerID, _, ok := caller(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	request, err := l.leaveService.DenyCancellation(r.Context(), managerID, requestID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cancellation denied; leave remains approved", leave.ToResponse(request))
}

// Delete implements LeaveHandler.
func (l *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, role, ok := caller(r)
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	requestID := chi.URLParam(r, "id")
	if err := l.leaveService.Delete(r.Context(), callerID, role, requestID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted", nil)
}
