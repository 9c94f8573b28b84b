package http

import (
	"net/http"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hris/hrms-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	now              func() time.Time
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService, now: time.Now}
}

func (h *dashboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := actor(w, r)
	if !ok {
		return
	}

	resp, err := h.dashboardService.GetDashboard(r.Context(), p, h.now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
