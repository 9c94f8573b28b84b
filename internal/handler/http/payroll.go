package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
	now            func() time.Time
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService, now: time.Now}
}

func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p, ok := actor(w, r)
	if !ok {
		return
	}

	resp, err := h.payrollService.List(r.Context(), p)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *payrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := actor(w, r)
	if !ok {
		return
	}

	resp, err := h.payrollService.Get(r.Context(), p, chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

func (h *payrollHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := actor(w, r)
	if !ok {
		return
	}

	var req payroll.UpdatePayrollRecordRequest
	if !decodeJSON(w, r, "UpdatePayroll", &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	resp, err := h.payrollService.Update(r.Context(), p, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll record updated successfully", resp)
}

// Payslip streams the rendered payslip as a download.
func (h *payrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	p, ok := actor(w, r)
	if !ok {
		return
	}

	slip, err := h.payrollService.Payslip(r.Context(), p, chi.URLParam(r, "employeeID"), h.now())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", slip.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(slip.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(slip.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(slip.Body)
}
