package http

import (
	"net/http"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/hrms-backend-go/internal/domain/calendar"
	"github.com/dayflow-hris/hrms-backend-go/internal/handler/http/response"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Calendar(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	calendarService   calendar.CalendarService
	now               func() time.Time
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, calendarService calendar.CalendarService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		calendarService:   calendarService,
		now:               time.Now,
	}
}

// employeeParam defaults ?employee_id= to the caller.
func employeeParam(r *http.Request, self string) string {
	if id := r.URL.Query().Get("employee_id"); id != "" {
		return id
	}
	return self
}

func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	p, ok := actor(w, r)
	if !ok {
		return
	}

	req := attendance.ListAttendanceRequest{
		EmployeeID: employeeParam(r, p.UserID),
		From:       r.URL.Query().Get("from"),
		To:         r.URL.Query().Get("to"),
	}

	records, err := h.attendanceService.List(r.Context(), p, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

func (h *attendanceHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	p, ok := actor(w, r)
	if !ok {
		return
	}

	summary, err := h.attendanceService.Summary(r.Context(), p, employeeParam(r, p.UserID))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// Calendar defaults year and month to the current UTC month.
func (h *attendanceHandlerImpl) Calendar(w http.ResponseWriter, r *http.Request) {
	p, ok := actor(w, r)
	if !ok {
		return
	}

	now := h.now().UTC()
	var errs validator.ValidationErrors
	year, ok := getIntQueryParam(r, "year", now.Year())
	if !ok {
		errs.Add("year", "year must be a number")
	}
	month, ok := getIntQueryParam(r, "month", int(now.Month()))
	if !ok {
		errs.Add("month", "month must be a number")
	}
	if err := errs.Err(); err != nil {
		response.HandleError(w, err)
		return
	}

	view, err := h.calendarService.Month(r.Context(), p, employeeParam(r, p.UserID), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}
