package http

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/user"
	"github.com/dayflow-hris/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	ListRequests(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	CreateRequest(w http.ResponseWriter, r *http.Request)
	DecideRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// ListRequests returns the caller's requests. Admins get every request
// unless ?employee_id= narrows it.
func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	p, ok := actor(w, r)
	if !ok {
		return
	}

	var (
		resp leave.ListLeaveRequestResponse
		err  error
	)
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" && p.Can(user.PermissionLeaveViewAll) {
		resp, err = l.leaveService.ListAll(r.Context(), p)
	} else {
		resp, err = l.leaveService.ListFor(r.Context(), p, employeeID)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (l *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	p, ok := actor(w, r)
	if !ok {
		return
	}

	resp, err := l.leaveService.ListPending(r.Context(), p)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	p, ok := actor(w, r)
	if !ok {
		return
	}

	resp, err := l.leaveService.Get(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	p, ok := actor(w, r)
	if !ok {
		return
	}

	var req leave.ApplyLeaveRequest
	if !decodeJSON(w, r, "CreateRequest", &req) {
		return
	}

	resp, err := l.leaveService.Apply(r.Context(), p, req)
	if err != nil {
		slog.Warn("CreateRequest service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted successfully", resp)
}

func (l *LeaveHandlerImpl) DecideRequest(w http.ResponseWriter, r *http.Request) {
	p, ok := actor(w, r)
	if !ok {
		return
	}

	var req leave.DecideLeaveRequest
	if !decodeJSON(w, r, "DecideRequest", &req) {
		return
	}
	req.LeaveID = chi.URLParam(r, "id")

	resp, err := l.leaveService.Decide(r.Context(), p, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Leave request "+resp.Status, resp)
}
