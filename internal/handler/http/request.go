package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/luocityspa/staff-portal/internal/domain/employee"
	"github.com/luocityspa/staff-portal/internal/domain/request"
	"github.com/luocityspa/staff-portal/internal/handler/http/response"
)

type RequestHandler interface {
	SubmitLeave(w http.ResponseWriter, r *http.Request)
	SubmitOvertime(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type RequestHandlerImpl struct {
	requestService request.Service
}

func NewRequestHandler(requestService request.Service) RequestHandler {
	return &RequestHandlerImpl{requestService: requestService}
}

// SubmitLeave implements RequestHandler.
func (h *RequestHandlerImpl) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	claims, err := accessClaims(r)
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req request.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.requestService.SubmitLeave(r.Context(), claims.UserID, req)
	if err != nil {
		slog.Error("SubmitLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request submitted", "employee_code", created.EmployeeCode, "total_days", created.TotalDays)
	response.Created(w, "Leave request submitted", created)
}

// SubmitOvertime implements RequestHandler.
func (h *RequestHandlerImpl) SubmitOvertime(w http.ResponseWriter, r *http.Request) {
	claims, err := accessClaims(r)
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	var req request.SubmitOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitOvertime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.requestService.SubmitOvertime(r.Context(), claims.UserID, req)
	if err != nil {
		slog.Error("SubmitOvertime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Overtime request submitted", "employee_code", created.EmployeeCode, "total_hours", created.TotalHours)
	response.Created(w, "Overtime request submitted", created)
}

// ListMine implements RequestHandler. Returns the caller's own leave
// and overtime requests merged, newest first.
func (h *RequestHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, err := accessClaims(r)
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	items, err := h.requestService.ListMine(r.Context(), claims.EmployeeCode)
	if err != nil {
		slog.Error("ListMine service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// ListPending implements RequestHandler. Heads see the pending requests
// of their own department only; the department comes from the token,
// not from the query string.
func (h *RequestHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	claims, err := accessClaims(r)
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	items, err := h.requestService.ListPendingByDepartment(r.Context(), claims.Department)
	if err != nil {
		slog.Error("ListPending service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// ListAll implements RequestHandler. HR sees every request; the query
// string narrows the merged listing in memory.
func (h *RequestHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	filter := request.Filter{
		Search:     r.URL.Query().Get("search"),
		Department: r.URL.Query().Get("department"),
		Status:     r.URL.Query().Get("status"),
		Kind:       r.URL.Query().Get("kind"),
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
	}

	items, err := h.requestService.ListAll(r.Context(), filter)
	if err != nil {
		slog.Error("ListAll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// Approve implements RequestHandler.
func (h *RequestHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, request.StatusApproved)
}

// Reject implements RequestHandler.
func (h *RequestHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, request.StatusRejected)
}

func (h *RequestHandlerImpl) decide(w http.ResponseWriter, r *http.Request, status request.Status) {
	claims, err := accessClaims(r)
	if err != nil {
		response.Unauthorized(w, "Missing or invalid token")
		return
	}

	kind := request.Kind(chi.URLParam(r, "kind"))
	if kind != request.KindLeave && kind != request.KindOvertime {
		response.BadRequest(w, "Unknown request kind", nil)
		return
	}
	id := chi.URLParam(r, "id")

	// A Head decides for their own department only; HR decides anywhere.
	if claims.Role == employee.RoleHead {
		item, err := h.requestService.Get(r.Context(), kind, id)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if item.Department() != claims.Department {
			response.Forbidden(w, "Requests outside your department cannot be decided")
			return
		}
	}

	item, err := h.requestService.Decide(r.Context(), kind, id, status, claims.Name)
	if err != nil {
		slog.Error("Decide service error", "error", err, "kind", kind, "id", id)
		response.HandleError(w, err)
		return
	}

	slog.Info("Request decided", "kind", kind, "id", id, "status", status, "decided_by", claims.Name)
	response.SuccessWithMessage(w, "Request "+string(status), item)
}
